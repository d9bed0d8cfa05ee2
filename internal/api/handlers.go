package api

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/youruser/ygodeck/internal/deck"
	"github.com/youruser/ygodeck/internal/i18n"
	imagepkg "github.com/youruser/ygodeck/internal/image"
	"github.com/youruser/ygodeck/internal/session"
)

const sessionKey = "session"

// Handler serves the deck builder API over a session store.
type Handler struct {
	store    *session.Store
	tr       *i18n.Translator
	renderer *imagepkg.Renderer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(store *session.Store, tr *i18n.Translator, renderer *imagepkg.Renderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:    store,
		tr:       tr,
		renderer: renderer,
		validate: validator.New(),
		logger:   logger,
	}
}

// health reports that the service is up.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) loadSession(c *gin.Context) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set(sessionKey, s)
	c.Next()
}

func current(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// bind decodes a JSON body into req and validates it.
func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errInvalidRequest, err))
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", errInvalidRequest, err))
		return false
	}
	return true
}

type createSessionRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// viewResponse is a session view with the category labels in the
// configured language. When Filter is set the sections only hold the
// entries matching it; Total still counts the whole deck.
type viewResponse struct {
	session.View
	Filter string                   `json:"filter,omitempty"`
	Labels map[deck.Category]string `json:"labels"`
}

func (h *Handler) render(s *session.Session, filter string) viewResponse {
	labels := make(map[deck.Category]string, len(deck.Categories()))
	for _, cat := range deck.Categories() {
		labels[cat] = h.tr.T("category."+string(cat), nil)
	}
	resp := viewResponse{View: s.View(), Labels: labels}
	if filter = strings.TrimSpace(filter); filter != "" {
		resp.Filter = filter
		resp.Sections = deck.GroupEntries(s.Entries(), filter)
	}
	return resp
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 && !h.bind(c, &req) {
		return
	}
	s := h.store.Create(req.Name)
	c.JSON(http.StatusCreated, h.render(s, ""))
}

// view returns the deck; ?q= narrows the sections to entries whose name,
// type or text holds every word.
func (h *Handler) view(c *gin.Context) {
	c.JSON(http.StatusOK, h.render(current(c), c.Query("q")))
}

func (h *Handler) deleteSession(c *gin.Context) {
	h.store.Delete(current(c).ID)
	c.Status(http.StatusNoContent)
}

type renameRequest struct {
	Name string `json:"name" validate:"max=100"`
}

func (h *Handler) rename(c *gin.Context) {
	var req renameRequest
	if !h.bind(c, &req) {
		return
	}
	s := current(c)
	s.Rename(req.Name)
	c.JSON(http.StatusOK, h.render(s, ""))
}

// search mirrors typing in the search box: every call opens the panel.
func (h *Handler) search(c *gin.Context) {
	res := current(c).Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, res)
}

func (h *Handler) closeSearch(c *gin.Context) {
	current(c).CloseSearch()
	c.Status(http.StatusNoContent)
}

// addCardRequest adds either a search result (card_id) or a card typed by
// hand (name and category). A manual card without category is a monster.
type addCardRequest struct {
	CardID   int    `json:"card_id" validate:"required_without=Name,gte=0"`
	Name     string `json:"name" validate:"required_without=CardID,max=200"`
	Category string `json:"category"`
}

func (h *Handler) addCard(c *gin.Context) {
	var req addCardRequest
	if !h.bind(c, &req) {
		return
	}
	s := current(c)

	var (
		e   deck.Entry
		err error
	)
	if req.CardID != 0 {
		e, err = s.AddResult(req.CardID)
	} else {
		cat := deck.Monster
		if strings.TrimSpace(req.Category) != "" {
			cat, err = deck.ParseCategory(req.Category)
		}
		if err == nil {
			e, err = s.AddManual(req.Name, cat)
		}
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Debug("card added",
		zap.String("session", s.ID),
		zap.String("card", e.Name),
		zap.Int("quantity", e.Quantity))
	c.JSON(http.StatusOK, e)
}

func (h *Handler) removeCard(c *gin.Context) {
	current(c).Remove(c.Param("entry"))
	c.Status(http.StatusNoContent)
}

type selectRequest struct {
	CardID  int    `json:"card_id" validate:"required_without=EntryID,gte=0"`
	EntryID string `json:"entry_id" validate:"required_without=CardID"`
}

func (h *Handler) selectCard(c *gin.Context) {
	var req selectRequest
	if !h.bind(c, &req) {
		return
	}
	s := current(c)
	var err error
	if req.CardID != 0 {
		err = s.SelectResult(req.CardID)
	} else {
		err = s.SelectEntry(req.EntryID)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.selected(c)
}

func (h *Handler) selected(c *gin.Context) {
	d, ok := current(c).Detail()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) export(c *gin.Context) {
	f, err := session.ParseFormat(c.Query("format"))
	if err != nil {
		h.fail(c, err)
		return
	}
	a, err := current(c).Export(f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.FileName))
	c.Data(http.StatusOK, a.ContentType, a.Body)
}

// deckImage renders the deck as a PNG with a QR code of the deck list.
func (h *Handler) deckImage(c *gin.Context) {
	v := current(c).View()
	var entries []deck.Entry
	for _, sec := range v.Sections {
		entries = append(entries, sec.Entries...)
	}
	img, err := h.renderer.Render(c.Request.Context(), v.Sections, deck.ExportText(v.Name, entries))
	if err != nil {
		h.fail(c, err)
		return
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", deck.FileName(v.Name, "png")))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr returns a PNG of a QR code holding the deck list.
func (h *Handler) qr(c *gin.Context) {
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil && v > 0 && v <= 2048 {
			size = v
		}
	}
	s := current(c)
	text := deck.ExportText(s.Name(), s.Entries())
	if text == "" {
		text = "# " + deck.DefaultName
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
