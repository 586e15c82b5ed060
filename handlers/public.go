package handlers

import (
	"net/http"

	"resto-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{
			"from":  t.From,
			"to":    t.To,
			"actor": t.Actor,
		})
	}
	respondSuccess(c, http.StatusOK, "Order lifecycle state machine", gin.H{
		"transitions": info,
		"statuses": []string{
			"pending_payment", "paid", "to_cook", "cooking", "completed", "cancelled",
		},
		"terminal_states": []string{"completed", "cancelled"},
	})
}
