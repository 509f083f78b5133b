package config

import "os"

type Config struct {
	Addr         string
	DatabasePath string
	PoolPath     string
	PolicyPath   string
	TimeZone     string
}

// Load reads configuration from the environment with local-development
// defaults. Timestamps are exchanged in TimeZone as local-civil time.
func Load() Config {
	return Config{
		Addr:         getEnv("ADDR", ":8080"),
		DatabasePath: getEnv("EXAM_DB_PATH", "exam.db"),
		PoolPath:     getEnv("EXAM_POOL_PATH", "questions.json"),
		PolicyPath:   getEnv("EXAM_POLICY_PATH", ""),
		TimeZone:     getEnv("EXAM_TIMEZONE", "America/Sao_Paulo"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
