package usecase

import (
	"strings"

	"go-resume-backend/internal/domain"
)

// BuildResumeFromInterview assembles a complete resume document from the
// answers collected during an interview. Responses are partitioned by their
// section tag (original order preserved within a section) and handed to a
// per-section builder; fragments are assigned onto a fresh empty document.
// Unknown sections and unroutable answers contribute nothing, never an error.
func BuildResumeFromInterview(responses []domain.InterviewResponse) domain.ResumeDocument {
	doc := domain.NewEmptyResume()

	partitions := make(map[domain.Section][]domain.InterviewResponse)
	for _, resp := range responses {
		partitions[resp.Section] = append(partitions[resp.Section], resp)
	}

	// Empty builder results leave the document's non-nil empty slices alone.
	if part := partitions[domain.SectionBasics]; len(part) > 0 {
		doc.Basics = buildBasics(part)
	}
	if entries := buildWork(partitions[domain.SectionWork]); len(entries) > 0 {
		doc.Work = entries
	}
	if entries := buildEducation(partitions[domain.SectionEducation]); len(entries) > 0 {
		doc.Education = entries
	}
	if skills := buildSkills(partitions[domain.SectionSkills]); len(skills) > 0 {
		doc.Skills = skills
	}
	if entries := buildProjects(partitions[domain.SectionProjects]); len(entries) > 0 {
		doc.Projects = entries
	}

	return doc.Touch()
}

// resolveField routes a response to the resume field it fills. The tag
// recorded on the response is authoritative; responses that arrive untagged
// (replayed transcripts, imports) fall back to a catalog prompt lookup and
// finally to keyword matching on the question text. Branch order matters in
// the keyword path: "email" must be tested before "name" since prompts can
// mention both.
func resolveField(resp domain.InterviewResponse) domain.FieldTag {
	if resp.Field != "" {
		return resp.Field
	}

	question := strings.ToLower(strings.TrimSpace(resp.Question))
	for _, q := range domain.QuestionsFor(resp.Section) {
		if strings.ToLower(q.Prompt) == question {
			return q.Field
		}
	}

	contains := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(question, sub) {
				return true
			}
		}
		return false
	}

	switch resp.Section {
	case domain.SectionBasics:
		switch {
		case contains("email"):
			return domain.FieldEmail
		case contains("phone"):
			return domain.FieldPhone
		case contains("summary", "about yourself"):
			return domain.FieldSummary
		case contains("location", "city", "located"):
			return domain.FieldLocation
		case contains("name"):
			return domain.FieldName
		}
	case domain.SectionWork:
		switch {
		case contains("add another"):
			return domain.FieldAddAnother
		case contains("company", "employer"):
			return domain.FieldCompany
		case contains("title", "position"):
			return domain.FieldPosition
		case contains("start"):
			return domain.FieldStartDate
		case contains("end", "currently"):
			return domain.FieldEndDate
		case contains("responsibilit"):
			return domain.FieldResponsibilities
		case contains("achievement", "highlight"):
			return domain.FieldHighlights
		}
	case domain.SectionEducation:
		switch {
		case contains("add another"):
			return domain.FieldAddAnother
		case contains("school", "university", "institution"):
			return domain.FieldInstitution
		case contains("degree"):
			return domain.FieldStudyType
		case contains("field of study", "major"):
			return domain.FieldStudyArea
		case contains("start"):
			return domain.FieldStartDate
		case contains("graduat", "end"):
			return domain.FieldEndDate
		}
	case domain.SectionSkills:
		return domain.FieldSkillList
	case domain.SectionProjects:
		switch {
		case contains("add another"):
			return domain.FieldAddAnother
		case contains("name"):
			return domain.FieldProjectName
		case contains("describe", "description"):
			return domain.FieldDescription
		case contains("achievement", "highlight"):
			return domain.FieldHighlights
		case contains("url", "link"):
			return domain.FieldProjectURL
		}
	}

	return ""
}

func buildBasics(responses []domain.InterviewResponse) domain.Basics {
	basics := domain.Basics{Profiles: []domain.Profile{}}
	for _, resp := range responses {
		answer := strings.TrimSpace(resp.Answer)
		switch resolveField(resp) {
		case domain.FieldName:
			basics.Name = answer
		case domain.FieldEmail:
			basics.Email = answer
		case domain.FieldPhone:
			basics.Phone = answer
		case domain.FieldSummary:
			basics.Summary = answer
		case domain.FieldLocation:
			basics.Location.City = answer
		}
	}
	return basics
}

func buildWork(responses []domain.InterviewResponse) []domain.Work {
	var entries []domain.Work
	var current domain.Work

	flush := func() {
		if current.Name != "" {
			entries = append(entries, current)
			current = domain.Work{}
		}
	}

	for _, resp := range responses {
		answer := strings.TrimSpace(resp.Answer)
		switch resolveField(resp) {
		case domain.FieldCompany:
			flush()
			current.Name = answer
		case domain.FieldPosition:
			current.Position = answer
		case domain.FieldStartDate:
			current.StartDate = answer
		case domain.FieldEndDate:
			current.EndDate = answer
		case domain.FieldResponsibilities:
			current.Summary = answer
		case domain.FieldHighlights:
			current.Highlights = splitLines(answer)
		}
	}
	flush()

	return entries
}

func buildEducation(responses []domain.InterviewResponse) []domain.Education {
	var entries []domain.Education
	var current domain.Education

	flush := func() {
		if current.Institution != "" {
			entries = append(entries, current)
			current = domain.Education{}
		}
	}

	for _, resp := range responses {
		answer := strings.TrimSpace(resp.Answer)
		switch resolveField(resp) {
		case domain.FieldInstitution:
			flush()
			current.Institution = answer
		case domain.FieldStudyType:
			current.StudyType = answer
		case domain.FieldStudyArea:
			current.Area = answer
		case domain.FieldStartDate:
			current.StartDate = answer
		case domain.FieldEndDate:
			current.EndDate = answer
		}
	}
	flush()

	return entries
}

func buildSkills(responses []domain.InterviewResponse) []domain.Skill {
	var skills []domain.Skill
	for _, resp := range responses {
		if resolveField(resp) == domain.FieldAddAnother {
			continue
		}
		for _, token := range splitList(resp.Answer) {
			skills = append(skills, domain.Skill{Name: token, Keywords: []string{}})
		}
	}
	return skills
}

func buildProjects(responses []domain.InterviewResponse) []domain.Project {
	var entries []domain.Project
	var current domain.Project

	flush := func() {
		if current.Name != "" {
			entries = append(entries, current)
			current = domain.Project{}
		}
	}

	for _, resp := range responses {
		answer := strings.TrimSpace(resp.Answer)
		switch resolveField(resp) {
		case domain.FieldProjectName:
			flush()
			current.Name = answer
		case domain.FieldDescription:
			current.Description = answer
		case domain.FieldHighlights:
			current.Highlights = splitLines(answer)
		case domain.FieldProjectURL:
			current.URL = answer
		}
	}
	flush()

	return entries
}

// splitLines turns a multi-line free-text answer into non-blank bullet
// strings.
func splitLines(answer string) []string {
	var out []string
	for _, line := range strings.Split(answer, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitList tokenizes a comma or newline separated answer, dropping empties.
func splitList(answer string) []string {
	var out []string
	for _, token := range strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
