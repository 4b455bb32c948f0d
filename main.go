package main

import (
	"log"
	"os"

	"github.com/codearena/arenabot/app"
	"github.com/codearena/arenabot/constants"
	"github.com/codearena/arenabot/health"
)

func main() {
	// 배포 환경 헬스체크를 위한 HTTP 서버 시작
	port := os.Getenv("PORT")
	if port == "" {
		port = constants.DefaultHTTPPort
	}
	health.StartHealthServer(port)

	application, err := app.New()
	if err != nil {
		log.Fatal(err)
	}

	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
