package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	fallbackNoSuggestion = "No suggestion available."
	fallbackError        = "Error generating treatment suggestion."
)

// TreatmentAdvisor turns a (plant, disease) pair into a free-text
// treatment suggestion. It never returns an error: an empty response or
// a failed call degrades to a fixed fallback string so the surrounding
// request can still succeed.
type TreatmentAdvisor struct {
	generator TextGenerator
}

func NewTreatmentAdvisor(generator TextGenerator) *TreatmentAdvisor {
	return &TreatmentAdvisor{generator: generator}
}

func (a *TreatmentAdvisor) Advise(ctx context.Context, disease, plant string) string {
	prompt := fmt.Sprintf(
		"Langkah-langkah mengatasi/merawat %s yang terkena penyakit %s dengan penjelasan singkat dan tepat",
		plant, disease,
	)

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("generate treatment suggestion failed: %v", err)
		return fallbackError
	}
	if strings.TrimSpace(text) == "" {
		return fallbackNoSuggestion
	}
	return text
}
