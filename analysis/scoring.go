package analysis

import (
	"sort"

	"github.com/examtrack/examtrack-api/models"
)

// tytSubjects are the subjects belonging to the TYT session. Anything
// else inside a mixed exam's subjects_data is counted toward AYT.
var tytSubjects = map[string]struct{}{
	"Türkçe":          {},
	"Temel Matematik": {},
	"Fen Bilimleri":   {},
	"Sosyal Bilimler": {},
}

// Net applies the four-wrong-cancels-one-correct scoring rule. Never
// negative.
func Net(correct, wrong int) float64 {
	net := float64(correct) - float64(wrong)/4
	if net < 0 {
		return 0
	}
	return net
}

// ExamNets sums per-subject nets into TYT and AYT totals. When the exam
// is a pure TYT or AYT sitting everything counts toward that total;
// mixed exams split per subject.
func ExamNets(examType string, subjects map[string]models.SubjectScore) (tytNet, aytNet float64) {
	for subject, score := range subjects {
		net := Net(score.CorrectCount, score.WrongCount)
		switch examType {
		case models.ExamTypeTYT:
			tytNet += net
		case models.ExamTypeAYT:
			aytNet += net
		default:
			if _, ok := tytSubjects[subject]; ok {
				tytNet += net
			} else {
				aytNet += net
			}
		}
	}
	return tytNet, aytNet
}

// OBP converts a diploma score (0-100) onto the 0-500 placement scale.
// Students placed into a program in a previous year get half.
func OBP(diplomaScore float64, previouslyPlaced bool) float64 {
	obp := diplomaScore / 100 * 500
	if obp < 0 {
		obp = 0
	}
	if obp > 500 {
		obp = 500
	}
	if previouslyPlaced {
		obp /= 2
	}
	return obp
}

// SubjectSolved aggregates question-log volume for one subject.
type SubjectSolved struct {
	Subject            string  `json:"subject"`
	TotalQuestions     int     `json:"totalQuestions"`
	TotalTimeMinutes   int     `json:"totalTimeMinutes"`
	AvgTimePerQuestion float64 `json:"avgTimePerQuestion"`
}

// SubjectSolvedStats totals attempted questions and study time per
// subject across all question logs. Subjects with no questions are
// excluded; output is sorted by total questions, highest first.
func SubjectSolvedStats(logs []models.QuestionLog) []SubjectSolved {
	totals := make(map[string]*SubjectSolved)
	for _, log := range logs {
		entry := totals[log.Subject]
		if entry == nil {
			entry = &SubjectSolved{Subject: log.Subject}
			totals[log.Subject] = entry
		}
		entry.TotalQuestions += log.CorrectCount + log.WrongCount + log.BlankCount
		entry.TotalTimeMinutes += log.TimeSpentMinutes
	}

	stats := make([]SubjectSolved, 0, len(totals))
	for _, entry := range totals {
		if entry.TotalQuestions == 0 {
			continue
		}
		entry.AvgTimePerQuestion = float64(entry.TotalTimeMinutes) / float64(entry.TotalQuestions)
		stats = append(stats, *entry)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalQuestions != stats[j].TotalQuestions {
			return stats[i].TotalQuestions > stats[j].TotalQuestions
		}
		return stats[i].Subject < stats[j].Subject
	})
	return stats
}
