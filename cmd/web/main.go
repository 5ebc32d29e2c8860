package main

import (
	"log"
	"net/http"

	"github.com/WendlandAlex/sea-salt-and-paper-calculator/server"
	"github.com/WendlandAlex/sea-salt-and-paper-calculator/store"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	summaries, err := store.NewSQLiteSummaryStore(cfg.DBPath)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer summaries.Close()

	s := server.NewServer(summaries)
	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
