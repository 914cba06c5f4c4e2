package handlers

import (
	"fmt"
	"log"
	"net/http"
)

// AskAssistantHandler godoc
// @Summary Ask the inventory assistant a question
// @Description Sends the serialized inventory and the question to the language model. A failed model call is reported inside the answer text, not as an HTTP error.
// @Tags assistant
// @Accept json
// @Produce json
// @Param question body AssistantRequest true "Question"
// @Success 200 {object} AssistantResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /assistant [post]
func AskAssistantHandler(w http.ResponseWriter, r *http.Request) {
	var req AssistantRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	answer, err := assistantClient.Ask(r.Context(), products, req.Question)
	if err != nil {
		// The assistant surfaces failures as response text.
		answer = fmt.Sprintf("Error: %v", err)
	}

	if err := writeJSON(w, http.StatusOK, AssistantResponse{Answer: answer}); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
