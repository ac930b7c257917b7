package handlers

import (
	"net/http"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"armory/internal/api/ws"
	"armory/internal/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	cfg *config.Config
	hub *ws.Hub
}

func NewWebSocketHandler(cfg *config.Config) *WebSocketHandler {
	return &WebSocketHandler{
		cfg: cfg,
		hub: ws.GetHub(),
	}
}

// HandleConnection upgrades the request and registers the socket for
// inventory update pushes. Browsers cannot set headers on websocket dials, so
// the JWT arrives as a query parameter.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		return ErrUnauthorized(c)
	}

	userID, err := h.parseToken(tokenString)
	if err != nil {
		return ErrUnauthorized(c)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}

func (h *WebSocketHandler) parseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwtv4.Parse(tokenString, func(t *jwtv4.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv4.SigningMethodHMAC); !ok {
			return nil, jwtv4.ErrSignatureInvalid
		}
		return []byte(h.cfg.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, jwtv4.ErrSignatureInvalid
	}

	claims, ok := token.Claims.(jwtv4.MapClaims)
	if !ok {
		return uuid.Nil, jwtv4.ErrSignatureInvalid
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, jwtv4.ErrSignatureInvalid
	}

	return uuid.Parse(idStr)
}
