package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type failing struct{}

func (failing) Generate(context.Context, Request) (string, error) {
	return "", errors.New("provider unreachable")
}

type fixed string

func (f fixed) Generate(context.Context, Request) (string, error) {
	return string(f), nil
}

func TestFallbackUsesPrimary(t *testing.T) {
	g := Fallback{Primary: fixed("Welcome, traveler.")}
	text, err := g.Generate(context.Background(), Request{NPCName: "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if text != "Welcome, traveler." {
		t.Errorf("text = %q, expected the primary's line", text)
	}
}

func TestFallbackDegradesToCanned(t *testing.T) {
	g := Fallback{Primary: failing{}}
	text, err := g.Generate(context.Background(), Request{
		NPCName:         "Ada",
		StepDescription: "Bring the chip to the lab.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Bring the chip to the lab.") {
		t.Errorf("text = %q, expected the step description", text)
	}
}

func TestCannedWithoutMissionContext(t *testing.T) {
	text, err := Canned{}.Generate(context.Background(), Request{NPCName: "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "Ada:") {
		t.Errorf("text = %q, expected the NPC name prefix", text)
	}
}
