package usecase_test

import (
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func tagged(section domain.Section, field domain.FieldTag, answer string) domain.InterviewResponse {
	return domain.InterviewResponse{Section: section, Field: field, Answer: answer}
}

func TestBuildResumeBasics(t *testing.T) {
	doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
		tagged(domain.SectionBasics, domain.FieldName, "Jane Doe"),
		tagged(domain.SectionBasics, domain.FieldEmail, "jane@example.com"),
		tagged(domain.SectionBasics, domain.FieldPhone, "+1 555 0100"),
		tagged(domain.SectionBasics, domain.FieldLocation, "Austin, TX"),
		tagged(domain.SectionBasics, domain.FieldSummary, "Backend engineer."),
	})

	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.Equal(t, "jane@example.com", doc.Basics.Email)
	assert.Equal(t, "+1 555 0100", doc.Basics.Phone)
	assert.Equal(t, "Austin, TX", doc.Basics.Location.City)
	assert.Equal(t, "Backend engineer.", doc.Basics.Summary)

	t.Run("Later answers overwrite earlier ones", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			tagged(domain.SectionBasics, domain.FieldName, "Jane"),
			tagged(domain.SectionBasics, domain.FieldName, "Jane Doe"),
		})
		assert.Equal(t, "Jane Doe", doc.Basics.Name)
	})
}

func TestBuildResumeWorkEntries(t *testing.T) {
	t.Run("New company flushes the previous entry", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			tagged(domain.SectionWork, domain.FieldCompany, "Acme"),
			tagged(domain.SectionWork, domain.FieldPosition, "Engineer"),
			tagged(domain.SectionWork, domain.FieldCompany, "Globex"),
			tagged(domain.SectionWork, domain.FieldPosition, "Manager"),
		})

		assert.Len(t, doc.Work, 2)
		assert.Equal(t, "Acme", doc.Work[0].Name)
		assert.Equal(t, "Engineer", doc.Work[0].Position)
		assert.Equal(t, "Globex", doc.Work[1].Name)
		assert.Equal(t, "Manager", doc.Work[1].Position)
	})

	t.Run("Responsibilities and highlights land on the current entry", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			tagged(domain.SectionWork, domain.FieldCompany, "Acme"),
			tagged(domain.SectionWork, domain.FieldStartDate, "January 2020"),
			tagged(domain.SectionWork, domain.FieldEndDate, "March 2023"),
			tagged(domain.SectionWork, domain.FieldResponsibilities, "Ran the billing platform"),
			tagged(domain.SectionWork, domain.FieldHighlights, "Cut costs 40%\n\nShipped v2"),
		})

		assert.Len(t, doc.Work, 1)
		entry := doc.Work[0]
		assert.Equal(t, "January 2020", entry.StartDate)
		assert.Equal(t, "March 2023", entry.EndDate)
		assert.Equal(t, "Ran the billing platform", entry.Summary)
		assert.Equal(t, []string{"Cut costs 40%", "Shipped v2"}, entry.Highlights)
	})

	t.Run("Add-another confirmations contribute nothing", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			tagged(domain.SectionWork, domain.FieldCompany, "Acme"),
			tagged(domain.SectionWork, domain.FieldAddAnother, "no"),
		})
		assert.Len(t, doc.Work, 1)
	})

	t.Run("An entry without a company is dropped", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			tagged(domain.SectionWork, domain.FieldPosition, "Engineer"),
		})
		assert.Empty(t, doc.Work)
	})
}

func TestBuildResumeEducation(t *testing.T) {
	doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
		tagged(domain.SectionEducation, domain.FieldInstitution, "MIT"),
		tagged(domain.SectionEducation, domain.FieldStudyType, "Bachelor of Science"),
		tagged(domain.SectionEducation, domain.FieldStudyArea, "Computer Science"),
		tagged(domain.SectionEducation, domain.FieldStartDate, "2014"),
		tagged(domain.SectionEducation, domain.FieldEndDate, "2018"),
	})

	assert.Len(t, doc.Education, 1)
	entry := doc.Education[0]
	assert.Equal(t, "MIT", entry.Institution)
	assert.Equal(t, "Bachelor of Science", entry.StudyType)
	assert.Equal(t, "Computer Science", entry.Area)
	assert.Equal(t, "2014", entry.StartDate)
	assert.Equal(t, "2018", entry.EndDate)
}

func TestBuildResumeSkills(t *testing.T) {
	doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
		tagged(domain.SectionSkills, domain.FieldSkillList, "Python, Go,  Rust\nSQL"),
	})

	names := make([]string, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		names = append(names, s.Name)
		assert.NotNil(t, s.Keywords)
	}
	assert.Equal(t, []string{"Python", "Go", "Rust", "SQL"}, names)
}

func TestBuildResumeProjects(t *testing.T) {
	doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
		tagged(domain.SectionProjects, domain.FieldProjectName, "resume-builder"),
		tagged(domain.SectionProjects, domain.FieldDescription, "Chat-driven resume app"),
		tagged(domain.SectionProjects, domain.FieldHighlights, "10k users"),
		tagged(domain.SectionProjects, domain.FieldProjectURL, "https://example.com"),
	})

	assert.Len(t, doc.Projects, 1)
	project := doc.Projects[0]
	assert.Equal(t, "resume-builder", project.Name)
	assert.Equal(t, "Chat-driven resume app", project.Description)
	assert.Equal(t, []string{"10k users"}, project.Highlights)
	assert.Equal(t, "https://example.com", project.URL)
}

func TestBuildResumeUntaggedResponses(t *testing.T) {
	t.Run("Catalog prompts resolve without a tag", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			{Section: domain.SectionBasics, Question: "What's your full name?", Answer: "Jane Doe"},
			{Section: domain.SectionBasics, Question: "What's your email address?", Answer: "jane@x.com"},
		})
		assert.Equal(t, "Jane Doe", doc.Basics.Name)
		assert.Equal(t, "jane@x.com", doc.Basics.Email)
	})

	t.Run("Unknown prompts fall back to keywords", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			{Section: domain.SectionWork, Question: "Which employer was this?", Answer: "Acme"},
			{Section: domain.SectionWork, Question: "And your title there?", Answer: "Engineer"},
		})
		assert.Len(t, doc.Work, 1)
		assert.Equal(t, "Acme", doc.Work[0].Name)
		assert.Equal(t, "Engineer", doc.Work[0].Position)
	})

	t.Run("Unroutable questions are dropped silently", func(t *testing.T) {
		doc := usecase.BuildResumeFromInterview([]domain.InterviewResponse{
			{Section: domain.SectionBasics, Question: "Favorite color?", Answer: "blue"},
			{Section: domain.Section("hobbies"), Question: "Hobbies?", Answer: "chess"},
		})
		assert.Equal(t, domain.Basics{Profiles: []domain.Profile{}}, doc.Basics)
	})
}
