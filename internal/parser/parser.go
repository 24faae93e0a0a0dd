// Package parser turns uploaded resume files into structured documents.
package parser

import (
	"context"

	"go-resume-backend/internal/domain"
)

// uploadParser keeps the original file reachable through Meta.Canonical and
// hands back an otherwise empty document. Text extraction happens in a
// separate service; until it lands, the interview flow is the structured
// source of truth and uploads preserve the file for later re-processing.
type uploadParser struct{}

func NewUploadParser() domain.ResumeParser {
	return &uploadParser{}
}

func (p *uploadParser) Parse(ctx context.Context, upload domain.ResumeUpload, storedURL string) (domain.ResumeDocument, error) {
	doc := domain.NewEmptyResume()
	doc.Meta.Canonical = storedURL
	return doc, nil
}
