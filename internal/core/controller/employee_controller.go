package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

const tokenTTL = time.Hour

type EmployeeController struct {
	employees *service.EmployeeService
	tokenAuth *jwtauth.JWTAuth
	responder responder.Responder
}

func NewEmployeeController(employees *service.EmployeeService, tokenAuth *jwtauth.JWTAuth, responder responder.Responder) *EmployeeController {
	return &EmployeeController{employees: employees, tokenAuth: tokenAuth, responder: responder}
}

// ListEmployees returns one page of employees. Default sort field: Surname.
// Credential hashes are never serialized.
func (c *EmployeeController) ListEmployees(w http.ResponseWriter, r *http.Request) {
	page, err := c.employees.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// Register creates a new employee with a hashed credential.
func (c *EmployeeController) Register(w http.ResponseWriter, r *http.Request) {
	var req entity.RegisterEmployeeRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.employees.Register(r.Context(), req)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

// Login verifies employee credentials and returns a signed JWT.
func (c *EmployeeController) Login(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginEmployeeRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	employee, err := c.employees.Login(r.Context(), req)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}

	_, token, err := c.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employee.ID.String(),
		"name":        employee.Name + " " + employee.Surname,
		"exp":         time.Now().Add(tokenTTL).Unix(),
	})
	if err != nil {
		c.responder.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	c.responder.Respond(w, http.StatusOK, entity.LoginEmployeeResponse{Token: token})
}

func (c *EmployeeController) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := c.employees.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, employee)
}

func (c *EmployeeController) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var req entity.RegisterEmployeeRequest
	if err := c.responder.Decode(r, &req); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := c.employees.Update(r.Context(), id, req)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *EmployeeController) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	if err := c.employees.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
