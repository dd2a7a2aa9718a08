package amplifier

import (
	"testing"

	"postguard/internal/core/risk"
	"postguard/internal/core/rulepack"
)

func TestApply(t *testing.T) {
	a := New(rulepack.MustLoad())
	cases := []struct {
		name, text, context string
		fire                bool
	}{
		{"both markers", "私はこう思う", "昨日の批判的な投稿", true},
		{"empty context", "私はこう思う", "", false},
		{"no critic marker", "私はこう思う", "楽しい一日でした", false},
		{"no opinion marker", "事実を述べます", "批判が集まった", false},
		{"markers swapped", "批判します", "そう思う", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, ok := a.Apply(c.text, c.context)
			if ok != c.fire {
				t.Fatalf("fired = %v", ok)
			}
			if ok && f.Issue != "過去の批判的な投稿に続く意見表明は、炎上リスクがあります" {
				t.Fatalf("issue = %q", f.Issue)
			}
		})
	}
}

func TestRaise_NeverLowers(t *testing.T) {
	f := Finding{Floor: risk.Medium}
	if f.Raise(risk.Low) != risk.Medium || f.Raise(risk.Medium) != risk.Medium || f.Raise(risk.High) != risk.High {
		t.Fatalf("Raise broken")
	}
}

func TestApply_DisabledRule(t *testing.T) {
	p := rulepack.MustLoad()
	p.Amplifier = rulepack.Amplifier{}
	if _, ok := New(p).Apply("思う", "批判"); ok {
		t.Fatalf("empty rule should never fire")
	}
}
