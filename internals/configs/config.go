package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
	AIGatewayURL     string
	AIGatewayKey     string
	AIGatewayModel   string
	MidtransServerKey string
	UploadDir        string
	PublicBaseURL    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Pas de fichier .env, utilisation des variables système")
		} else {
			log.Println("✅ Fichier .env chargé")
		}
	} else {
		log.Println("🚀 Environnement Railway, variables système")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	AIGatewayURL = GetEnv("AI_GATEWAY_URL", "https://api.openai.com/v1/chat/completions")
	AIGatewayKey = GetEnv("AI_GATEWAY_KEY")
	AIGatewayModel = GetEnv("AI_GATEWAY_MODEL", "gpt-4o-mini")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	UploadDir = GetEnv("UPLOAD_DIR", "./uploads")
	PublicBaseURL = GetEnv("PUBLIC_BASE_URL", "http://localhost:3000")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET non défini !")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET non défini !")
	}
	if AIGatewayKey == "" {
		log.Println("⚠️ AI_GATEWAY_KEY non défini, assistant IA indisponible")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
