package main

import (
	"flag"
	"log"
	"os"

	"github.com/davel/go-realtime-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port, nil)

	log.Printf("Realtime Sphere Tracer Web Preview")
	log.Printf("Frames at http://localhost:%d/api/frame, live stream at /api/stream", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
