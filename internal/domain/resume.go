package domain

import (
	"context"
	"time"
)

// ============================================================================
// JSON Resume Schema (v1.0.0)
// Based on https://jsonresume.org/schema/
// ============================================================================

// SchemaVersion is written into Meta.Version of every document this service
// produces. Bump only together with a schema migration.
const SchemaVersion = "v1.0.0"

type ResumeDocument struct {
	Basics    Basics      `json:"basics"`
	Work      []Work      `json:"work"`
	Education []Education `json:"education"`
	Skills    []Skill     `json:"skills"`
	Projects  []Project   `json:"projects"`
	Languages []Language  `json:"languages"`
	Interests []Interest  `json:"interests"`
	Meta      Meta        `json:"meta"`
}

type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url" validate:"omitempty,url"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

type Location struct {
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
}

type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url" validate:"omitempty,url"`
}

type Work struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	URL        string   `json:"url" validate:"omitempty,url"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	Institution string   `json:"institution"`
	URL         string   `json:"url" validate:"omitempty,url"`
	Area        string   `json:"area"`
	StudyType   string   `json:"studyType"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Score       string   `json:"score"`
	Courses     []string `json:"courses"`
}

type Skill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Keywords    []string `json:"keywords"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	URL         string   `json:"url" validate:"omitempty,url"`
}

type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

type Interest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type Meta struct {
	// Canonical points at the stored original file for uploaded resumes.
	// Empty for interview-built documents.
	Canonical    string    `json:"canonical,omitempty"`
	Version      string    `json:"version"`
	LastModified time.Time `json:"lastModified"`
}

// NewEmptyResume returns a fully initialized empty document: every collection
// is an empty (non-nil) slice and every scalar an empty string. This is the
// identity element merges and the interview classifier start from.
func NewEmptyResume() ResumeDocument {
	return ResumeDocument{
		Basics:    Basics{Profiles: []Profile{}},
		Work:      []Work{},
		Education: []Education{},
		Skills:    []Skill{},
		Projects:  []Project{},
		Languages: []Language{},
		Interests: []Interest{},
		Meta: Meta{
			Version:      SchemaVersion,
			LastModified: time.Now().UTC(),
		},
	}
}

// ValidShape is a weak structural gate for raw resume payloads, not full
// schema validation: the record must carry at least one recognized top-level
// section key.
func ValidShape(candidate map[string]any) bool {
	if candidate == nil {
		return false
	}
	for _, key := range []string{"basics", "work", "education", "skills"} {
		if _, ok := candidate[key]; ok {
			return true
		}
	}
	return false
}

// Touch returns a copy of the document with Meta.LastModified refreshed.
// The receiver is never mutated; callers must use the returned value.
func (d ResumeDocument) Touch() ResumeDocument {
	d.Meta.LastModified = time.Now().UTC()
	return d
}

// SubstantiallyComplete reports whether the document carries enough content
// to be treated as a finished resume: an identity (name or email) plus at
// least one work, education or skills entry. This is a heuristic used by
// callers, nothing in the pipeline enforces it.
func (d ResumeDocument) SubstantiallyComplete() bool {
	hasIdentity := d.Basics.Name != "" || d.Basics.Email != ""
	hasContent := len(d.Work) > 0 || len(d.Education) > 0 || len(d.Skills) > 0
	return hasIdentity && hasContent
}

// ResumePatch is a partial document for merge-style updates. Nil fields are
// retained from the base; non-nil fields replace the base field wholesale
// (no deep merging: replacing Work replaces the whole list).
type ResumePatch struct {
	Basics    *Basics      `json:"basics,omitempty"`
	Work      *[]Work      `json:"work,omitempty"`
	Education *[]Education `json:"education,omitempty"`
	Skills    *[]Skill     `json:"skills,omitempty"`
	Projects  *[]Project   `json:"projects,omitempty"`
	Languages *[]Language  `json:"languages,omitempty"`
	Interests *[]Interest  `json:"interests,omitempty"`
}

// MergeResume applies patch over base (shallow, top-level fields only) and
// refreshes the modification timestamp. An empty patch yields base with only
// the timestamp changed.
func MergeResume(base ResumeDocument, patch ResumePatch) ResumeDocument {
	if patch.Basics != nil {
		base.Basics = *patch.Basics
	}
	if patch.Work != nil {
		base.Work = *patch.Work
	}
	if patch.Education != nil {
		base.Education = *patch.Education
	}
	if patch.Skills != nil {
		base.Skills = *patch.Skills
	}
	if patch.Projects != nil {
		base.Projects = *patch.Projects
	}
	if patch.Languages != nil {
		base.Languages = *patch.Languages
	}
	if patch.Interests != nil {
		base.Interests = *patch.Interests
	}
	return base.Touch()
}

// SkillNames returns the plain skill names, used for the derived search
// column on the resumes table.
func (d ResumeDocument) SkillNames() []string {
	names := make([]string, 0, len(d.Skills))
	for _, s := range d.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// ============================================================================
// Stored resume record
// ============================================================================

// Resume is the user-scoped database row wrapping a ResumeDocument. The
// original file fields are populated only by the upload path.
type Resume struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	Data             ResumeDocument `json:"resume_data"`
	OriginalFileURL  *string        `json:"original_file_url"`
	OriginalFileName *string        `json:"original_file_name"`
	IsBasisResume    bool           `json:"is_basis_resume"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ResumeUpload carries an uploaded resume file through validation, storage
// and parsing.
type ResumeUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ============================================================================
// Repository Interface
// ============================================================================

type ResumeRepository interface {
	// GetBasisResume returns the user's basis resume, or nil when none exists.
	GetBasisResume(ctx context.Context, userID string) (*Resume, error)

	// UpsertBasisResume creates or replaces the user's basis resume.
	UpsertBasisResume(ctx context.Context, userID string, doc ResumeDocument, originalFileURL, originalFileName *string) (*Resume, error)
}

// ============================================================================
// Usecase Interface
// ============================================================================

type ResumeUsecase interface {
	GetMyResume(ctx context.Context, userID string) (*Resume, error)

	// UpdateMyResume merge-saves a partial document over the stored one.
	UpdateMyResume(ctx context.Context, userID string, patch ResumePatch) (*Resume, error)

	// UploadResume validates and stores an original resume file, runs the
	// parser and upserts the resulting document.
	UploadResume(ctx context.Context, userID string, upload ResumeUpload) (*Resume, error)
}

// ResumeParser extracts a structured document from an uploaded file. The
// stored URL ends up in Meta.Canonical so the document keeps a reference to
// its source.
type ResumeParser interface {
	Parse(ctx context.Context, upload ResumeUpload, storedURL string) (ResumeDocument, error)
}
