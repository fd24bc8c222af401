package main

import (
	"os"

	"backend/config"
	"backend/routes"
)

func main() {
	config.InitDB()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
