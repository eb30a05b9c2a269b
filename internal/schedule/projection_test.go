package schedule

import (
	"testing"

	"congressprogram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(day, start, end string) *domain.Session {
	return &domain.Session{Day: day, StartTime: start, EndTime: end}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		session *domain.Session
		want    domain.EventType
	}{
		{
			name:    "explicit type wins over keywords",
			session: &domain.Session{EventType: "plenary", NotesES: "Pausa para café"},
			want:    domain.EventPlenary,
		},
		{
			name:    "pausa is a break",
			session: &domain.Session{NotesES: "Pausa para café"},
			want:    domain.EventBreak,
		},
		{
			name:    "comida is a break",
			session: &domain.Session{NotesES: "Comida libre"},
			want:    domain.EventBreak,
		},
		{
			name:    "bienvenida is a welcome",
			session: &domain.Session{NotesES: "Acto de bienvenida"},
			want:    domain.EventWelcome,
		},
		{
			name:    "recepcao is a welcome",
			session: &domain.Session{NotesES: "Recepção dos participantes"},
			want:    domain.EventWelcome,
		},
		{
			name:    "asamblea is a panel",
			session: &domain.Session{NotesES: "Asamblea general"},
			want:    domain.EventPanel,
		},
		{
			name:    "keynote is a plenary",
			session: &domain.Session{NotesES: "Keynote de apertura"},
			want:    domain.EventPlenary,
		},
		{
			name:    "memorial lecture is a plenary",
			session: &domain.Session{NotesES: "memorial lecture en honor"},
			want:    domain.EventPlenary,
		},
		{
			name:    "taller is a workshop",
			session: &domain.Session{NotesES: "Taller de composición"},
			want:    domain.EventWorkshop,
		},
		{
			name:    "break rule wins over later rules",
			session: &domain.Session{NotesES: "pausa y taller"},
			want:    domain.EventBreak,
		},
		{
			name:    "no match defaults to symposium",
			session: &domain.Session{NotesES: "Mesa de ponencias"},
			want:    domain.EventSymposium,
		},
		{
			name:    "empty notes default to symposium",
			session: &domain.Session{},
			want:    domain.EventSymposium,
		},
		{
			name:    "matching is case-insensitive",
			session: &domain.Session{NotesES: "PAUSA"},
			want:    domain.EventBreak,
		},
		{
			name:    "english notes are not consulted",
			session: &domain.Session{NotesEN: "coffee break"},
			want:    domain.EventSymposium,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.session))
			// deterministic: same input, same answer
			assert.Equal(t, tt.want, Classify(tt.session))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"two hours", "09:00", "11:00", 120},
		{"ninety minutes", "11:30", "13:00", 90},
		{"negative when end precedes start", "14:00", "13:00", -60},
		{"missing start", "", "10:00", 0},
		{"missing end", "10:00", "", 0},
		{"both missing", "", "", 0},
		{"zero duration", "10:00", "10:00", 0},
		{"seconds suffix tolerated", "09:00:00", "10:30:00", 90},
		{"garbled start counts as midnight", "xx:yy", "01:00", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.start, tt.end))
		})
	}
}

func TestBlockExtent(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"proportional above floor", "09:00", "11:00", 180},
		{"floor for short sessions", "09:00", "09:20", 60},
		{"floor for zero duration", "09:00", "09:00", 60},
		{"floor absorbs negative duration", "14:00", "13:00", 60},
		{"default when start missing", "", "10:00", 80},
		{"default when end missing", "10:00", "", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BlockExtent(tt.start, tt.end))
		})
	}
}

func TestBlockExtentMonotone(t *testing.T) {
	// extent never decreases as duration grows
	prev := 0.0
	for minutes := 0; minutes <= 300; minutes += 15 {
		end := minuteLabel(9*60 + minutes)
		got := BlockExtent("09:00", end)
		require.GreaterOrEqual(t, got, prev, "duration %d", minutes)
		require.GreaterOrEqual(t, got, float64(MinExtent))
		prev = got
	}
}

func minuteLabel(total int) string {
	h := total / 60
	m := total % 60
	return string([]byte{byte('0' + h/10), byte('0' + h%10), ':', byte('0' + m/10), byte('0' + m%10)})
}

func TestSelectDay(t *testing.T) {
	morning := session("2026-09-28", "09:00", "11:00")
	parallelA := session("2026-09-28", "11:30", "13:00")
	parallelB := session("2026-09-28", "11:30", "13:00")
	otherDay := session("2026-09-29", "09:00", "11:00")
	all := []*domain.Session{parallelB, otherDay, morning, parallelA}

	got := SelectDay(all, "2026-09-28")

	require.Equal(t, "2026-09-28", got.Date)
	require.Len(t, got.TimeSlots, 2)

	// ascending by start time regardless of input order
	assert.Equal(t, "09:00", got.TimeSlots[0].StartTime)
	assert.Equal(t, "11:30", got.TimeSlots[1].StartTime)

	// partition: every matching session appears exactly once
	total := 0
	for _, slot := range got.TimeSlots {
		for _, s := range slot.Sessions {
			assert.Equal(t, "2026-09-28", s.Day)
			assert.Equal(t, slot.StartTime, s.StartTime)
			total++
		}
	}
	assert.Equal(t, 3, total)

	// lone session is full width; two untyped parallel sessions are not
	assert.True(t, got.TimeSlots[0].IsFullWidth)
	assert.False(t, got.TimeSlots[1].IsFullWidth)
}

func TestSelectDayFullWidthByType(t *testing.T) {
	coffee := session("2026-09-28", "11:00", "11:30")
	coffee.NotesES = "Pausa para café"
	peer := session("2026-09-28", "11:00", "12:30")

	got := SelectDay([]*domain.Session{coffee, peer}, "2026-09-28")
	require.Len(t, got.TimeSlots, 1)
	// break in first position makes the whole slot full width even with a peer
	assert.True(t, got.TimeSlots[0].IsFullWidth)
	assert.Len(t, got.TimeSlots[0].Sessions, 2)

	// first-session asymmetry: same pair in the other order is not full width
	got = SelectDay([]*domain.Session{peer, coffee}, "2026-09-28")
	require.Len(t, got.TimeSlots, 1)
	assert.False(t, got.TimeSlots[0].IsFullWidth)
}

func TestSelectDayEmptyAndUnknownDay(t *testing.T) {
	got := SelectDay(nil, "2026-09-28")
	assert.Empty(t, got.TimeSlots)

	got = SelectDay([]*domain.Session{session("2026-09-28", "09:00", "10:00")}, "2026-12-31")
	assert.Empty(t, got.TimeSlots)
}

func TestSelectDayDoesNotMutateInput(t *testing.T) {
	a := session("2026-09-28", "10:00", "11:00")
	b := session("2026-09-28", "09:00", "10:00")
	in := []*domain.Session{a, b}
	_ = SelectDay(in, "2026-09-28")
	assert.Same(t, a, in[0])
	assert.Same(t, b, in[1])
}

func TestDisplayTitle(t *testing.T) {
	sym := &domain.Symposium{TitleES: "Música y migración", TitleEN: "Music and Migration"}
	symNoEN := &domain.Symposium{TitleES: "Sólo español"}

	tests := []struct {
		name    string
		session *domain.Session
		lang    string
		want    string
	}{
		{
			name:    "direct title wins",
			session: &domain.Session{Title: "Apertura", Symposium: sym, NotesES: "notas"},
			lang:    "es",
			want:    "Apertura",
		},
		{
			name:    "symposium title es",
			session: &domain.Session{Symposium: sym},
			lang:    "es",
			want:    "Música y migración",
		},
		{
			name:    "symposium title en",
			session: &domain.Session{Symposium: sym},
			lang:    "en",
			want:    "Music and Migration",
		},
		{
			name:    "symposium en falls back to es",
			session: &domain.Session{Symposium: symNoEN},
			lang:    "en",
			want:    "Sólo español",
		},
		{
			name:    "notes fallback",
			session: &domain.Session{NotesES: "Taller de composición"},
			lang:    "es",
			want:    "Taller de composición",
		},
		{
			name:    "notes en falls back to es",
			session: &domain.Session{NotesES: "Taller de composición"},
			lang:    "en",
			want:    "Taller de composición",
		},
		{
			name:    "nothing present yields empty",
			session: &domain.Session{},
			lang:    "es",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayTitle(tt.session, tt.lang))
		})
	}
}

func TestRoomNameAndSpeakers(t *testing.T) {
	sym := &domain.Symposium{Coordinators: []string{"A. Pérez", "B. Souza"}}

	s := &domain.Session{Room: "Aula Magna", RoomName: "Sala 2"}
	assert.Equal(t, "Aula Magna", RoomName(s))

	s = &domain.Session{RoomName: "Sala 2"}
	assert.Equal(t, "Sala 2", RoomName(s))

	assert.Equal(t, "", RoomName(&domain.Session{}))

	sp := &domain.Session{Speakers: "C. López"}
	assert.Equal(t, "C. López", Speakers(sp))

	sp = &domain.Session{Symposium: sym}
	assert.Equal(t, "A. Pérez, B. Souza", Speakers(sp))

	assert.Equal(t, "", Speakers(&domain.Session{}))
	assert.Equal(t, "", Speakers(&domain.Session{Symposium: &domain.Symposium{}}))
}

func TestViewScenario(t *testing.T) {
	// coffee break scenario: classified, grouped alone, full width
	coffee := session("2026-09-28", "09:00", "11:00")
	coffee.NotesES = "Pausa para café"

	v := View(coffee)
	assert.Equal(t, domain.EventBreak, v.Type)
	assert.Equal(t, 120, v.DurationMinutes)
	assert.Equal(t, 180.0, v.BlockExtent)
	assert.Equal(t, "Pausa para café", v.TitleES)

	day := SelectDay([]*domain.Session{coffee}, "2026-09-28")
	require.Len(t, day.TimeSlots, 1)
	assert.True(t, day.TimeSlots[0].IsFullWidth)
}

func TestDays(t *testing.T) {
	days := Days()
	require.Len(t, days, 5)
	assert.Equal(t, "2026-09-28", days[0].Date)
	assert.Equal(t, "2026-10-02", days[4].Date)
	assert.Equal(t, "lunes, 28 de septiembre de 2026", days[0].FullLabelES)

	// returned slice is a copy
	days[0].Date = "mutated"
	assert.Equal(t, "2026-09-28", Days()[0].Date)
}
