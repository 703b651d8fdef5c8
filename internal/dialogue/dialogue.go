// Package dialogue abstracts NPC dialogue text generation behind a small
// interface so the presentation layer can plug in a remote text provider
// without the simulation knowing about it. A canned generator derived from
// mission content serves as the always-available fallback.
package dialogue

import (
	"context"
	"fmt"
)

// Request carries the context a generator may use to produce dialogue.
type Request struct {
	NPCID           string
	NPCName         string
	MissionTitle    string
	StepDescription string
	PlayerLevel     int
}

// Generator produces one dialogue line for an NPC. Implementations may take
// arbitrarily long; callers pass a context and must tolerate errors.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Canned generates dialogue from mission content alone. It never fails.
type Canned struct{}

func (Canned) Generate(_ context.Context, req Request) (string, error) {
	name := req.NPCName
	if name == "" {
		name = "???"
	}
	if req.StepDescription != "" {
		return fmt.Sprintf("%s: %s", name, req.StepDescription), nil
	}
	if req.MissionTitle != "" {
		return fmt.Sprintf("%s: Keep at it. %q is not going to finish itself.", name, req.MissionTitle), nil
	}
	return fmt.Sprintf("%s: Nice day for a walk, isn't it?", name), nil
}

// Fallback wraps a primary generator and degrades to canned text when the
// primary fails or the context is done. It never returns an error.
type Fallback struct {
	Primary Generator
}

func (f Fallback) Generate(ctx context.Context, req Request) (string, error) {
	if f.Primary != nil {
		if text, err := f.Primary.Generate(ctx, req); err == nil && text != "" {
			return text, nil
		}
	}
	return Canned{}.Generate(ctx, req)
}
