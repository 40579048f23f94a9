package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Clearenv()
	os.Setenv("TELEGRAM_BOT_TOKEN", "test_bot_token")
	os.Setenv("DB_PASSWORD", "test_password")
	defer os.Clearenv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.TelegramToken != "test_bot_token" {
		t.Errorf("TelegramToken = %q, want %q", cfg.TelegramToken, "test_bot_token")
	}
	if cfg.DBPassword != "test_password" {
		t.Errorf("DBPassword = %q, want %q", cfg.DBPassword, "test_password")
	}
	if cfg.QuestionsDir != "quiz-questions" {
		t.Errorf("QuestionsDir = %q, want default %q", cfg.QuestionsDir, "quiz-questions")
	}
	if cfg.QuestionsEncoding != "koi8-r" {
		t.Errorf("QuestionsEncoding = %q, want default %q", cfg.QuestionsEncoding, "koi8-r")
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Missing DB_PASSWORD",
			envVars: map[string]string{},
		},
		{
			name: "Debug token without chat id",
			envVars: map[string]string{
				"DB_PASSWORD":              "password",
				"TELEGRAM_DEBUG_BOT_TOKEN": "debug_token",
			},
		},
		{
			name: "Invalid TELEGRAM_CHAT_ID",
			envVars: map[string]string{
				"DB_PASSWORD":      "password",
				"TELEGRAM_CHAT_ID": "not_a_number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
}

func TestValidateTelegram(t *testing.T) {
	cfg := &Config{DBPassword: "password"}
	if err := cfg.ValidateTelegram(); err == nil {
		t.Error("ValidateTelegram() expected error for missing token, got nil")
	}

	cfg.TelegramToken = "token"
	if err := cfg.ValidateTelegram(); err != nil {
		t.Errorf("ValidateTelegram() error = %v", err)
	}
}

func TestValidateVK(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		groupID   int
		shouldErr bool
	}{
		{name: "Missing token", token: "", groupID: 123, shouldErr: true},
		{name: "Missing group id", token: "token", groupID: 0, shouldErr: true},
		{name: "Valid", token: "token", groupID: 123, shouldErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{VKToken: tt.token, VKGroupID: tt.groupID}
			err := cfg.ValidateVK()
			if tt.shouldErr && err == nil {
				t.Error("ValidateVK() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("ValidateVK() error = %v", err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "quizbot",
		DBPassword: "secret",
		DBName:     "quizbot_db",
		DBSSLMode:  "disable",
	}

	want := "host=db port=5432 user=quizbot password=secret dbname=quizbot_db sslmode=disable"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
