package schedule

import "congressprogram/internal/domain"

// conferenceDays is the fixed day table for the 2026 congress.
var conferenceDays = []domain.ConferenceDay{
	{
		Date:        "2026-09-28",
		LabelES:     "Lun. 28",
		LabelEN:     "Mon. 28",
		FullLabelES: "lunes, 28 de septiembre de 2026",
		FullLabelEN: "Monday, September 28, 2026",
	},
	{
		Date:        "2026-09-29",
		LabelES:     "Mar. 29",
		LabelEN:     "Tue. 29",
		FullLabelES: "martes, 29 de septiembre de 2026",
		FullLabelEN: "Tuesday, September 29, 2026",
	},
	{
		Date:        "2026-09-30",
		LabelES:     "Mié. 30",
		LabelEN:     "Wed. 30",
		FullLabelES: "miércoles, 30 de septiembre de 2026",
		FullLabelEN: "Wednesday, September 30, 2026",
	},
	{
		Date:        "2026-10-01",
		LabelES:     "Jue. 01",
		LabelEN:     "Thu. 01",
		FullLabelES: "jueves, 1 de octubre de 2026",
		FullLabelEN: "Thursday, October 1, 2026",
	},
	{
		Date:        "2026-10-02",
		LabelES:     "Vie. 02",
		LabelEN:     "Fri. 02",
		FullLabelES: "viernes, 2 de octubre de 2026",
		FullLabelEN: "Friday, October 2, 2026",
	},
}

// Days returns the congress day table in chronological order. The slice is a
// copy; callers may not mutate the table through it.
func Days() []domain.ConferenceDay {
	out := make([]domain.ConferenceDay, len(conferenceDays))
	copy(out, conferenceDays)
	return out
}
