package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ResultEvent is the payload the score feed posts when games finish
type ResultEvent struct {
	Year   int    `json:"year"`
	Gender string `json:"gender"`
	Event  string `json:"event"`
}

func isRelevantTournament(event ResultEvent, year int, gender string) bool {
	return event.Year == year && strings.EqualFold(event.Gender, gender)
}

// ResultsWebhookHandler HTTP endpoint that receives a webhook from the score
// feed used to kick off updating stored game results and recalculating scores
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Kicks off the update functions for the correct bracket and leaderboard data
func (s *Server) ResultsWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event ResultEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !isRelevantTournament(event, s.api.Store.GetYear(), s.api.Store.GetGender()) {
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Printf("result event year=%d gender=%s event=%s\n", event.Year, event.Gender, event.Event)

	// Kick async pipeline so the feed is never kept waiting on a full rescore
	go func() {
		if err := s.api.UpdateCorrectBracket(); err != nil {
			log.Println("UpdateCorrectBracket failed:", err)
			return
		}
		if err := s.api.ScoreBrackets(); err != nil {
			log.Println("ScoreBrackets failed:", err)
		}
	}()

	w.WriteHeader(http.StatusOK)
}
