package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/fitsight/fitsight-backend/internal/domain"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	emailTaken, err := h.users.ExistsByEmail(req.Email)
	if err != nil {
		writeStoreError(w, r, err, "failed to create user")
		return
	}
	if emailTaken {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}

	existing, err := h.users.GetByUsername(req.Username)
	if err != nil {
		writeStoreError(w, r, err, "failed to create user")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "username already registered")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := domain.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      string(passwordHash),
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		GoalProgress:  req.GoalProgress,
		Experience:    req.Experience,
		Goal:          req.Goal,
		Deadline:      req.Deadline,
		Gadget:        req.Gadget,
	}

	id, err := h.users.Create(&user)
	if err != nil {
		writeStoreError(w, r, err, "failed to create user")
		return
	}

	user.ID = id
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		writeStoreError(w, r, err, "failed to get user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll()
	if err != nil {
		writeStoreError(w, r, err, "failed to list users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
