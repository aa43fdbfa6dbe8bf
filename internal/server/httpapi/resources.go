package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

func pageParams(r *http.Request) (page, size int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	size, _ = strconv.Atoi(q.Get("size"))
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	return page, size
}

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	writeJSON(w, http.StatusOK, h.store.Offers(page, size))
}

func (h *Handler) getOffer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	o, err := h.store.GetOffer(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "offer not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) createOffer(w http.ResponseWriter, r *http.Request) {
	var in models.Offer
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if in.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if claims := claimsFrom(r.Context()); claims != nil && in.RecruiterID == 0 {
		in.RecruiterID = claims.UserID
	}
	writeJSON(w, http.StatusCreated, h.store.CreateOffer(&in))
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in models.Offer
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	o, err := h.store.UpdateOffer(id, &in)
	if err != nil {
		writeError(w, http.StatusNotFound, "offer not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.store.DeleteOffer(id); err != nil {
		writeError(w, http.StatusNotFound, "offer not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) listSkillTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.SkillTypes())
}

func (h *Handler) createSkillType(w http.ResponseWriter, r *http.Request) {
	var in models.SkillType
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if in.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateSkillType(&in))
}

func (h *Handler) updateSkillType(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in models.SkillType
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	st, err := h.store.UpdateSkillType(id, &in)
	if err != nil {
		writeError(w, http.StatusNotFound, "skill type not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) deleteSkillType(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.store.DeleteSkillType(id); err != nil {
		writeError(w, http.StatusNotFound, "skill type not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Roles())
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var in models.RoleDefinition
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if in.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.CreateRole(&in))
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in models.RoleDefinition
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	role, err := h.store.UpdateRole(id, &in)
	if err != nil {
		writeError(w, http.StatusNotFound, "role not found")
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.store.DeleteRole(id); err != nil {
		writeError(w, http.StatusNotFound, "role not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Notifications())
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.store.MarkNotificationRead(id); err != nil {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.store.DeleteNotification(id); err != nil {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
