package soul_test

import (
	"strings"
	"testing"

	"github.com/Vayain/soul-builder/soul"
	"github.com/stretchr/testify/require"
)

func testAnswers() soul.AnswerSet {
	return soul.AnswerSet{
		Name:        "Aria",
		Personality: "curious, witty",
		Values:      "honesty, kindness",
		Tone:        "warm and concise",
		Backstory:   "Assembled from a thousand letters.",
		Signature:   "Stay curious.",
	}
}

func TestRender_Sections(t *testing.T) {
	doc := soul.Render(testAnswers())

	require.True(t, strings.HasPrefix(doc, "# SOUL.md - Aria\n"))
	require.Contains(t, doc, "## Identity\n\n- **Name:** Aria\n- **Personality:** curious, witty\n- **Core Values:** honesty, kindness")
	require.Contains(t, doc, "## Communication Style\n\nwarm and concise")
	require.Contains(t, doc, "## Backstory\n\nAssembled from a thousand letters.")
	require.Contains(t, doc, "## Signature\n\nStay curious.")
	require.NotContains(t, doc, soul.NoSignaturePlaceholder)
	require.True(t, strings.HasSuffix(doc, "\n"))

	order := []string{"## Identity", "## Communication Style", "## Backstory", "## Signature"}
	last := -1
	for _, heading := range order {
		idx := strings.Index(doc, heading)
		require.Greater(t, idx, last, heading)
		last = idx
	}
}

func TestRender_Deterministic(t *testing.T) {
	first := soul.Render(testAnswers())
	for i := 0; i < 10; i++ {
		require.Equal(t, first, soul.Render(testAnswers()))
	}
}

func TestRender_EmptySignature(t *testing.T) {
	for name, signature := range map[string]string{"skipped": "", "blank": "   \n"} {
		t.Run(name, func(t *testing.T) {
			a := testAnswers()
			a.Signature = signature
			doc := soul.Render(a)
			require.Contains(t, doc, "## Signature\n\n"+soul.NoSignaturePlaceholder+"\n")
		})
	}
}

func TestRender_DifferentInputsDiffer(t *testing.T) {
	a := testAnswers()
	b := testAnswers()
	b.Tone = "formal"
	require.NotEqual(t, soul.Render(a), soul.Render(b))
}
