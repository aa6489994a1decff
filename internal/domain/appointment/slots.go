package appointment

import "github.com/BruksfildServices01/booking-core/internal/models"

// ======================================================
// SlotIndex — consultas de disponibilidade
// ======================================================
//
// Funções puras sobre uma agenda. Só agendamentos com status scheduled
// ocupam horário: depois de terminal (completed/canceled/no_show) o
// horário volta a ficar livre.

// TakenTimes devolve os horários ocupados de um dia.
func TakenTimes(schedule []*models.Appointment, date string) map[string]struct{} {
	taken := make(map[string]struct{})
	for _, ap := range schedule {
		if ap.Date == date && Status(ap.Status) == StatusScheduled {
			taken[ap.Time] = struct{}{}
		}
	}
	return taken
}

// IsFree informa se um horário está livre no dia.
func IsFree(schedule []*models.Appointment, date string, hm string) bool {
	_, busy := TakenTimes(schedule, date)[hm]
	return !busy
}

// AvailableSlots filtra os horários candidatos mantendo a ordem de entrada.
func AvailableSlots(schedule []*models.Appointment, date string, candidates []string) []string {
	taken := TakenTimes(schedule, date)

	free := make([]string, 0, len(candidates))
	for _, hm := range candidates {
		if _, busy := taken[hm]; !busy {
			free = append(free, hm)
		}
	}
	return free
}
