package domain

import (
	"context"
	"time"
)

// ============================================================================
// Sections
// ============================================================================

// Section names a subdivision of the resume document with its own question
// list.
type Section string

const (
	SectionBasics    Section = "basics"
	SectionWork      Section = "work"
	SectionEducation Section = "education"
	SectionSkills    Section = "skills"
	SectionProjects  Section = "projects"
)

// sectionOrder is the fixed, total interview order. No branching, no
// skipping; work, education and projects are internally repeatable.
var sectionOrder = []Section{
	SectionBasics,
	SectionWork,
	SectionEducation,
	SectionSkills,
	SectionProjects,
}

// SectionOrder returns the interview order, first to last.
func SectionOrder() []Section {
	out := make([]Section, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

func (s Section) index() int {
	for i, sec := range sectionOrder {
		if sec == s {
			return i
		}
	}
	return len(sectionOrder)
}

// Known reports whether s is one of the recognized sections.
func (s Section) Known() bool {
	return s.index() < len(sectionOrder)
}

// Before reports whether s comes strictly before other in the interview
// order. Unrecognized sections sort after every known one.
func (s Section) Before(other Section) bool {
	return s.index() < other.index()
}

// DisplayName is the human-readable section title used in transition
// announcements.
func (s Section) DisplayName() string {
	switch s {
	case SectionBasics:
		return "Basic Information"
	case SectionWork:
		return "Work Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	}
	return string(s)
}

// NextSection returns the section following current in the fixed order. The
// zero value starts the order (returns basics). After the last section, and
// for any unrecognized section, ok is false: the interview is complete.
func NextSection(current Section) (Section, bool) {
	if current == "" {
		return sectionOrder[0], true
	}
	idx := current.index()
	if idx >= len(sectionOrder)-1 {
		return "", false
	}
	return sectionOrder[idx+1], true
}

// ============================================================================
// Question catalog
// ============================================================================

// FieldTag identifies the resume field a catalog question collects. Carrying
// the tag on the question (instead of re-deriving intent from prompt text at
// classification time) keeps routing unambiguous even when prompts overlap.
type FieldTag string

const (
	// basics
	FieldName     FieldTag = "name"
	FieldEmail    FieldTag = "email"
	FieldPhone    FieldTag = "phone"
	FieldLocation FieldTag = "location"
	FieldSummary  FieldTag = "summary"

	// work
	FieldCompany          FieldTag = "company"
	FieldPosition         FieldTag = "position"
	FieldStartDate        FieldTag = "start_date"
	FieldEndDate          FieldTag = "end_date"
	FieldResponsibilities FieldTag = "responsibilities"
	FieldHighlights       FieldTag = "highlights"

	// education
	FieldInstitution FieldTag = "institution"
	FieldStudyType   FieldTag = "study_type"
	FieldStudyArea   FieldTag = "study_area"

	// skills
	FieldSkillList FieldTag = "skill_list"

	// projects
	FieldProjectName FieldTag = "project_name"
	FieldDescription FieldTag = "description"
	FieldProjectURL  FieldTag = "project_url"

	// repeat-loop confirmation ("add another?"); never classified
	FieldAddAnother FieldTag = "add_another"
)

// CatalogQuestion is one interview prompt tagged with the field it fills.
type CatalogQuestion struct {
	Field  FieldTag `json:"field"`
	Prompt string   `json:"prompt"`
}

// questionCatalog is immutable process-wide static data. The prompt text is
// part of the external contract and must not be reworded.
var questionCatalog = map[Section][]CatalogQuestion{
	SectionBasics: {
		{FieldName, "What's your full name?"},
		{FieldEmail, "What's your email address?"},
		{FieldPhone, "What's your phone number?"},
		{FieldLocation, "Where are you located? (City, State/Region)"},
		{FieldSummary, "Tell me a bit about yourself - what's your professional summary?"},
	},
	SectionWork: {
		{FieldCompany, "What company did you work for?"},
		{FieldPosition, "What was your job title/position?"},
		{FieldStartDate, "When did you start? (e.g., January 2020)"},
		{FieldEndDate, "When did you end (or are you currently working there)?"},
		{FieldResponsibilities, "What were your main responsibilities?"},
		{FieldHighlights, "What were your key achievements or highlights?"},
		{FieldAddAnother, "Would you like to add another work experience? (yes/no)"},
	},
	SectionEducation: {
		{FieldInstitution, "What school/university did you attend?"},
		{FieldStudyType, "What degree did you receive? (e.g., Bachelor of Science)"},
		{FieldStudyArea, "What was your field of study/major?"},
		{FieldStartDate, "When did you start?"},
		{FieldEndDate, "When did you graduate (or expected graduation)?"},
		{FieldAddAnother, "Would you like to add another education entry? (yes/no)"},
	},
	SectionSkills: {
		{FieldSkillList, "What are your technical skills? (Separate with commas)"},
		{FieldSkillList, "What soft skills do you have? (Separate with commas)"},
	},
	SectionProjects: {
		{FieldProjectName, "What's the name of the project?"},
		{FieldDescription, "Describe the project briefly"},
		{FieldHighlights, "What were the key highlights or achievements?"},
		{FieldProjectURL, "Is there a URL/link to this project?"},
		{FieldAddAnother, "Would you like to add another project? (yes/no)"},
	},
}

// QuestionsFor returns the fixed prompt list for a section, confirmation
// question included. Unrecognized sections yield an empty list, never an
// error.
func QuestionsFor(section Section) []CatalogQuestion {
	qs := questionCatalog[section]
	out := make([]CatalogQuestion, len(qs))
	copy(out, qs)
	return out
}

// EntryQuestionsFor returns the section's questions without the add-another
// confirmation — the prompts asked once per entry.
func EntryQuestionsFor(section Section) []CatalogQuestion {
	var out []CatalogQuestion
	for _, q := range questionCatalog[section] {
		if q.Field != FieldAddAnother {
			out = append(out, q)
		}
	}
	return out
}

// Repeatable reports whether the section collects multiple entries (it
// carries an add-another confirmation question).
func Repeatable(section Section) bool {
	for _, q := range questionCatalog[section] {
		if q.Field == FieldAddAnother {
			return true
		}
	}
	return false
}

// ============================================================================
// Interview session
// ============================================================================

// InterviewResponse is one answered question. Responses are immutable and
// kept in chronological order; the section and field tags recorded here are
// what the classifier routes on.
type InterviewResponse struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Section  Section  `json:"section"`
	Field    FieldTag `json:"field"`
}

// InterviewSession is the mutable per-interview state. It lives only in
// memory: discarding the session loses the accumulated responses, nothing is
// persisted until completion.
type InterviewSession struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Section Section `json:"current_section"`
	// QuestionIndex indexes the section's entry questions; an index equal to
	// the entry-question count means the add-another confirmation is pending
	// (repeatable sections only).
	QuestionIndex int                 `json:"question_index"`
	Responses     []InterviewResponse `json:"responses"`
	Completed     bool                `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InterviewStep is what the presentation layer gets back after starting an
// interview or submitting an answer: the bot lines to show, and on
// completion the assembled document.
type InterviewStep struct {
	SessionID string          `json:"session_id"`
	Messages  []string        `json:"messages"`
	Done      bool            `json:"done"`
	Resume    *ResumeDocument `json:"resume,omitempty"`
}

// ============================================================================
// Repository Interface
// ============================================================================

type InterviewSessionRepository interface {
	Create(ctx context.Context, session *InterviewSession) error
	Get(ctx context.Context, id string) (*InterviewSession, error)
	Update(ctx context.Context, session *InterviewSession) error
	Delete(ctx context.Context, id string) error
}

// ============================================================================
// Usecase Interface
// ============================================================================

type InterviewUsecase interface {
	// StartInterview creates a session and returns the greeting plus the
	// first question.
	StartInterview(ctx context.Context, userID string) (*InterviewStep, error)

	// SubmitAnswer records the answer to the pending question and advances
	// the interview. Blank answers are rejected at the delivery boundary and
	// never reach this method.
	SubmitAnswer(ctx context.Context, userID, sessionID, answer string) (*InterviewStep, error)

	GetSession(ctx context.Context, userID, sessionID string) (*InterviewSession, error)

	// AbandonInterview discards the session and everything collected so far.
	AbandonInterview(ctx context.Context, userID, sessionID string) error
}
