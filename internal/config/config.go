package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Timezone   string

	// Menu fixo de horários oferecido aos clientes.
	SlotStart       string
	SlotIntervalMin int
	SlotCount       int

	// Liga o seeder de demonstração (equivalente ao modo DEV).
	DevSeed bool
}

func Load() *Config {
	// .env é opcional; variáveis de ambiente têm precedência.
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Timezone:        getEnv("TIMEZONE", ""),
		SlotStart:       getEnv("SLOT_START", "09:00"),
		SlotIntervalMin: getEnvInt("SLOT_INTERVAL_MIN", 60),
		SlotCount:       getEnvInt("SLOT_COUNT", 8),
		DevSeed:         getEnvBool("DEV_SEED", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// SlotMenu materializa o menu de horários candidatos (ex.: 09:00..16:00).
func (c *Config) SlotMenu() []string {
	return BuildSlotMenu(c.SlotStart, c.SlotIntervalMin, c.SlotCount)
}

// BuildSlotMenu calcula count horários a partir de start, espaçados por
// interval minutos. start fora do formato HH:mm cai no padrão 09:00.
func BuildSlotMenu(start string, intervalMin int, count int) []string {
	var sh, sm int
	if _, err := fmt.Sscanf(start, "%d:%d", &sh, &sm); err != nil {
		sh, sm = 9, 0
	}

	minutes := sh*60 + sm
	menu := make([]string, 0, count)
	for i := 0; i < count; i++ {
		menu = append(menu, fmt.Sprintf("%02d:%02d", minutes/60%24, minutes%60))
		minutes += intervalMin
	}
	return menu
}
