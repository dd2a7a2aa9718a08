package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"postguard/internal/modkit"
	"postguard/internal/platform/config"
	"postguard/internal/platform/logger"
	"postguard/internal/platform/store"
	"postguard/internal/services/api"
	checkdom "postguard/internal/services/api/check/domain"
	checksvc "postguard/internal/services/api/check/service"
	assessmod "postguard/internal/services/assess/module"
	journalrepo "postguard/internal/services/journal/repo"
	pprepo "postguard/internal/services/priorposts/repo"

	"github.com/spf13/cobra"
)

// app carries the state shared by the subcommands; the pipeline is built lazily
type app struct {
	latency  string
	rulepack string
	userID   string
	prior    string
	pretty   bool

	st  *store.Store
	svc checkdom.Service
	p   *api.Pipeline
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "postguard-check",
		Short:         "Check a post for risky expressions before publishing it",
		SilenceUsage:  true,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.st != nil {
				return a.st.Close(cmd.Context())
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.latency, "latency", "", "pipeline latency: none or simulated (default from POSTGUARD_PIPELINE_LATENCY)")
	pf.StringVar(&a.rulepack, "rulepack", "", "path to a YAML or JSON rulepack override")
	pf.StringVar(&a.userID, "user", "", "user id whose prior posts are used as context")
	pf.StringVar(&a.prior, "context", "", "prior posts to use as context instead of the feed lookup")
	pf.BoolVar(&a.pretty, "pretty", true, "indent the JSON output")

	root.AddCommand(
		a.textCmd(),
		a.imageCmd(),
		a.videoCmd(),
		a.rulepackCmd(),
		a.migrateCmd(),
	)
	return root
}

func (a *app) textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text [text | -]",
		Short: "Check a text post; '-' or no argument reads stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.CheckText(cmd.Context(), checkdom.TextRequest{Text: text, UserID: checkdom.UserID(a.userID)})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), out)
		},
	}
}

func (a *app) imageCmd() *cobra.Command {
	var caption string
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Check an image with an optional caption",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := dataURL(args[0])
			if err != nil {
				return err
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.CheckImage(cmd.Context(), checkdom.ImageRequest{
				ImageBase64: payload,
				Caption:     caption,
				UserID:      checkdom.UserID(a.userID),
			})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&caption, "caption", "", "caption posted with the image")
	return cmd
}

func (a *app) videoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video <file>",
		Short: "Transcribe a video and check the transcript and every segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := dataURL(args[0])
			if err != nil {
				return err
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.CheckVideo(cmd.Context(), checkdom.VideoRequest{
				VideoData: payload,
				UserID:    checkdom.UserID(a.userID),
			})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), out)
		},
	}
}

func (a *app) rulepackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rulepack",
		Short: "Print the summary of the loaded rulepack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.service(cmd.Context()); err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), a.p.Assess.Pack().Summary())
		},
	}
}

func (a *app) migrateCmd() *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the postgres tables for prior posts and the check journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if printOnly {
				_, err := fmt.Fprintf(w, "-- postgres\n%s\n%s\n-- clickhouse\n%s\n",
					strings.TrimSpace(pprepo.DDL), strings.TrimSpace(journalrepo.PGDDL), strings.TrimSpace(journalrepo.CHDDL))
				return err
			}
			st, err := a.store(cmd.Context())
			if err != nil {
				return err
			}
			if st.PG == nil {
				return fmt.Errorf("migrate: postgres is disabled, set SERVICE_PGSQL_ENABLED")
			}
			for _, ddl := range []string{pprepo.DDL, journalrepo.PGDDL} {
				if _, err := st.PG.Exec(cmd.Context(), ddl); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
			logger.Get().Info().Msg("postgres tables ready; apply the clickhouse table with --print")
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the DDL instead of applying it")
	return cmd
}

func (a *app) store(ctx context.Context) (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	st, err := store.Open(ctx, store.ConfigFrom(config.New(), "postguard-check"), store.WithLogger(*logger.Get()))
	if err != nil {
		return nil, err
	}
	a.st = st
	return st, nil
}

func (a *app) service(ctx context.Context) (checkdom.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	st, err := a.store(ctx)
	if err != nil {
		return nil, err
	}
	deps := modkit.FromStore(*logger.Get(), config.New(), st, nil)
	p, err := api.NewPipeline(deps, assessmod.Options{Latency: a.latency, Rulepack: a.rulepack})
	if err != nil {
		return nil, err
	}
	a.p = p
	ports := p.CheckPorts()
	if a.prior != "" {
		ports.Context = fixedContext(a.prior)
	}
	a.svc = checksvc.New(ports)
	return a.svc, nil
}

// fixedContext resolves every user to the same prior posts
type fixedContext string

func (f fixedContext) Resolve(context.Context, string) (string, bool) { return string(f), true }

func (a *app) print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if a.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// dataURL reads path and encodes it the way the browser extension sends media
func dataURL(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(b)
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
