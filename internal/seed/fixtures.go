package seed

import (
	"time"

	"github.com/BruksfildServices01/booking-core/internal/infra/repository"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// LoadFixtures carrega o elenco de demonstração (sem agendamentos — a
// agenda do dia é responsabilidade do Seeder quando DEV_SEED está ligado).
func LoadFixtures(repo *repository.AppointmentMemoryRepository) {
	now := time.Now()

	defaultPrices := models.Prices{Haircut: "15€", HaircutBeard: "20€"}

	barbers := []*models.Barber{
		{ID: "1", Name: "Michelle", Specialty: "Fade Master",
			Description: "Precision skin fades and seamless tapers with ultra-smooth transitions."},
		{ID: "2", Name: "Jay", Specialty: "Beard Sculptor",
			Description: "Razor-sharp beard shaping with perfect cheek and neckline symmetry."},
		{ID: "3", Name: "Luisa", Specialty: "Classic Cuts",
			Description: "Timeless scissor work and clean finishes for every hair type."},
		{ID: "4", Name: "Mario", Specialty: "Design Expert",
			Description: "Freehand designs and sharp detailing."},
		{ID: "5", Name: "Andre", Specialty: "Precision Fades",
			Description: "Consistent, photo-ready fades every visit."},
		{ID: "6", Name: "Carly", Specialty: "Beard Sculpting",
			Description: "Hot-towel shaves and defined beard lines."},
		{ID: "7", Name: "Musa", Specialty: "Lineup Specialist",
			Description: "Crisp lineups and edge-ups."},
		{ID: "8", Name: "Leo", Specialty: "Modern Cuts",
			Description: "Contemporary styles and textured crops."},
	}
	for _, b := range barbers {
		b.Prices = defaultPrices
		b.CreatedAt = now
		repo.PutBarber(b)
	}

	customers := []*models.Customer{
		{ID: "user1", Name: "John Doe", Phone: "+351 912 345 678"},
		{ID: "user2", Name: "Sarah Smith", Phone: "+351 987 654 321"},
		{ID: "user3", Name: "David Johnson", Phone: "+351 923 456 789"},
		{ID: "user4", Name: "Emily Brown", Phone: "+351 934 567 890"},
		{ID: "user5", Name: "Lucas Silva", Phone: "+351 945 678 901"},
	}
	for _, c := range customers {
		c.CreatedAt = now
		repo.PutCustomer(c)
	}
}
