package api

import (
	"bytes"
	"errors"
	"html"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/deckcode/internal/deck"
	"github.com/youruser/deckcode/internal/deckcode"
	imagepkg "github.com/youruser/deckcode/internal/image"
)

// Server holds what the handlers share. It is read-only once built.
type Server struct {
	codec     *deckcode.Codec
	log       *zap.Logger
	qrSize    int
	bodyLimit int64
}

// NewServer builds the handler set. maxCodeLength bounds deck codes and,
// scaled up, request bodies.
func NewServer(codec *deckcode.Codec, log *zap.Logger, maxCodeLength, qrSize int) *Server {
	return &Server{
		codec:     codec,
		log:       log,
		qrSize:    qrSize,
		bodyLimit: int64(maxCodeLength) * 32,
	}
}

type codeRequest struct {
	Code string `json:"code" binding:"required"`
}

// deckResponse carries the name as text. NameEncoding is "latin1" when the
// stored bytes were not UTF-8; posting the response back to the encode
// route restores the original bytes.
type deckResponse struct {
	Name         string      `json:"name"`
	NameEncoding string      `json:"name_encoding,omitempty"`
	NameHTML     string      `json:"name_html"`
	Heroes       []deck.Hero `json:"heroes"`
	Cards        []deck.Card `json:"cards"`
	HeroCount    int         `json:"hero_count"`
	CardCount    int         `json:"card_count"`
	Text         string      `json:"text"`
}

func newDeckResponse(d deck.Deck) deckResponse {
	heroes, cards := d.Counts()
	doc := deck.NewDocument(d)
	resp := deckResponse{
		Name:         doc.Name,
		NameEncoding: doc.NameEncoding,
		NameHTML:     html.EscapeString(doc.Name),
		Heroes:       d.Heroes,
		Cards:        d.Cards,
		HeroCount:    heroes,
		CardCount:    cards,
		Text:         deck.ExportDeckText(d),
	}
	if resp.Heroes == nil {
		resp.Heroes = []deck.Hero{}
	}
	if resp.Cards == nil {
		resp.Cards = []deck.Card{}
	}
	return resp
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) limitBody(c *gin.Context) {
	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.bodyLimit)
	}
	c.Next()
}

func (s *Server) decodeHandler(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	d, err := s.codec.Decode(req.Code)
	if err != nil {
		s.codecError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDeckResponse(d))
}

// encodeHandler accepts a deck and returns its code. With ?sort=true the
// entries are put in ID order first instead of being rejected.
func (s *Server) encodeHandler(c *gin.Context) {
	var doc deck.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		s.badRequest(c, err)
		return
	}
	d, err := doc.RawDeck()
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if sortEntries, _ := strconv.ParseBool(c.Query("sort")); sortEntries {
		d = d.Sorted()
	}
	code, err := s.codec.Encode(d)
	if err != nil {
		s.codecError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

// rawHandler returns the unparsed buffer behind a code, for diagnostics.
func (s *Server) rawHandler(c *gin.Context) {
	buf, err := s.codec.RawBytes(c.Query("code"))
	if err != nil {
		s.codecError(c, err)
		return
	}
	out := make([]int, len(buf))
	for i, b := range buf {
		out[i] = int(b)
	}
	version, _ := deckcode.BufferVersion(buf)
	c.JSON(http.StatusOK, gin.H{"bytes": out, "length": len(buf), "version": version})
}

// qr endpoint returns a PNG of a QR for "text" query param
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	s.writeQR(c, text)
}

// deckQRHandler is qrHandler for deck codes; the code must decode first.
func (s *Server) deckQRHandler(c *gin.Context) {
	code := c.Query("code")
	if _, err := s.codec.Decode(code); err != nil {
		s.codecError(c, err)
		return
	}
	s.writeQR(c, code)
}

func (s *Server) writeQR(c *gin.Context, text string) {
	size := s.qrSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deckImageHandler renders the share image for {"code": ...}.
func (s *Server) deckImageHandler(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	d, err := s.codec.Decode(req.Code)
	if err != nil {
		s.codecError(c, err)
		return
	}

	qr, err := imagepkg.GenerateQRImage(req.Code, s.qrSize)
	if err != nil {
		s.internalError(c, err)
		return
	}
	out := imagepkg.ComposeDeckImage(d, qr)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		s.internalError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large", "kind": deckcode.Kind(deckcode.ErrTooLarge)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "bad_request"})
}

// codecError maps a deck code failure onto a status: transport problems
// are 400, oversized input 413, anything structural 422.
func (s *Server) codecError(c *gin.Context, err error) {
	_ = c.Error(err)
	kind := deckcode.Kind(err)
	s.log.Debug("deck code rejected", zap.String("kind", kind), zap.Error(err))

	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, deckcode.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	case deckcode.IsTransportError(err):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}

func (s *Server) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
