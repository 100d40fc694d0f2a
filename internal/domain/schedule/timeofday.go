package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay é um horário do dia em minutos desde a meia-noite (0–1439).
// Toda comparação do pacote acontece nesse formato; "HH:mm" só existe
// na borda.
type TimeOfDay int

// ParseClock converte "HH:mm" (24h) em TimeOfDay.
func ParseClock(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Interval é um intervalo semiaberto [From, To) dentro de um único dia.
// Turnos, almoço e agendamentos usam a mesma representação.
type Interval struct {
	From TimeOfDay `json:"from"`
	To   TimeOfDay `json:"to"`
}

// ParseInterval monta um Interval a partir de "HH:mm"/"HH:mm".
// Strings vazias nos dois campos significam intervalo ausente.
func ParseInterval(from, to string) (Interval, error) {
	if from == "" && to == "" {
		return Interval{}, nil
	}

	f, err := ParseClock(from)
	if err != nil {
		return Interval{}, err
	}

	t, err := ParseClock(to)
	if err != nil {
		return Interval{}, err
	}

	if t < f {
		return Interval{}, fmt.Errorf("interval end %s before start %s", to, from)
	}

	return Interval{From: f, To: t}, nil
}

// IsZero indica intervalo ausente (dia sem expediente, almoço não
// configurado).
func (i Interval) IsZero() bool {
	return i.From == 0 && i.To == 0
}

// Overlaps aplica a regra semiaberta: extremidades encostadas não contam
// como sobreposição.
func (i Interval) Overlaps(other Interval) bool {
	return i.From < other.To && other.From < i.To
}

// Contains responde se t cai dentro de [From, To).
func (i Interval) Contains(t TimeOfDay) bool {
	return t >= i.From && t < i.To
}
