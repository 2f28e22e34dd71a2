package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-sql-driver/mysql"

	"github.com/fitsight/fitsight-backend/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrNoReferencedRow = 1452
)

// writeStoreError distinguishes constraint violations (client faults) from
// infrastructure failures. Internal causes are logged, never echoed.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			writeError(w, http.StatusConflict, "duplicate entry")
			return
		case mysqlErrNoReferencedRow:
			writeError(w, http.StatusBadRequest, "referenced user does not exist")
			return
		}
	}
	log.Printf("[%s] storage error: %v", middleware.GetRequestID(r.Context()), err)
	writeError(w, http.StatusInternalServerError, fallback)
}

func currentUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authentication context")
		return 0, false
	}
	return userID, true
}
