// Package api implementa el cliente HTTP del backend de inventario: el
// núcleo de peticiones y los clientes por recurso (productos, proveedores,
// usuarios). Toda respuesta se normaliza a un Envelope uniforme; los fallos
// viajan como datos y nunca como error a través de esta frontera.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// Mensajes genéricos de la taxonomía de errores.
const (
	msgConnectionError = "Error de conexión con el servidor. Por favor, inténtalo de nuevo."
	msgDefaultSuccess  = "Operación exitosa"
)

// Envelope forma uniforme a la que se resuelve toda llamada HTTP,
// independiente de las variaciones del backend.
type Envelope struct {
	Success bool
	Message string
	Data    json.RawMessage
	Token   string // extraído de access_token o token, según la revisión del backend
}

// Config parámetros del cliente.
type Config struct {
	BaseURL    string
	Locale     dto.Locale
	HTTPClient *http.Client // nil -> http.DefaultClient (sin timeout)
	Log        *logger.Logger
}

// Client núcleo de peticiones HTTP contra el backend REST.
// Sin reintentos, sin caché, sin timeout propio.
type Client struct {
	baseURL string
	locale  dto.Locale
	http    *http.Client
	log     *logger.Logger
}

// New construye el cliente.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	lg := cfg.Log
	if lg == nil {
		lg = logger.Nop()
	}
	loc := cfg.Locale
	if loc == "" {
		loc = dto.LocaleEN
	}
	return &Client{baseURL: cfg.BaseURL, locale: loc, http: hc, log: lg}
}

// Locale devuelve el vocabulario configurado.
func (c *Client) Locale() dto.Locale {
	return c.locale
}

// Request construye y envía una petición JSON con auth Bearer opcional.
//
// Política de éxito: estado sin contenido -> {success:true} con mensaje por
// defecto; estado OK con cuerpo -> {success:true, data:<JSON crudo>, message,
// token}. Política de fallo: estado no OK -> {success:false, message:<del
// servidor o genérico>}; errores de red o de parseo -> {success:false,
// message:<error de conexión>}. Nunca retorna error al llamador.
func (c *Client) Request(ctx context.Context, endpoint, method, token string, body any) Envelope {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			c.log.Error().Err(err).Str("endpoint", endpoint).Msg("serializar cuerpo")
			return Envelope{Success: false, Message: msgConnectionError}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("construir petición")
		return Envelope{Success: false, Message: msgConnectionError}
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("endpoint", endpoint).
			Str("request_id", reqID).Msg("fallo de red")
		return Envelope{Success: false, Message: msgConnectionError}
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("endpoint", endpoint).
		Str("request_id", reqID).Int("status", resp.StatusCode).Msg("respuesta")

	// Respuestas sin contenido (p. ej. DELETE 204)
	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusResetContent {
		return Envelope{Success: true, Message: msgDefaultSuccess}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{Success: false, Message: msgConnectionError}
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	if ok && len(raw) == 0 {
		return Envelope{Success: true, Message: msgDefaultSuccess}
	}

	// El token puede llegar en cualquiera de los dos nombres según la
	// revisión del backend.
	var probe struct {
		Message     string `json:"message"`
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}

	if !ok {
		_ = json.Unmarshal(raw, &probe) // cuerpo de error sin JSON válido es tolerable
		msg := probe.Message
		if msg == "" {
			msg = fmt.Sprintf("Error en la solicitud %s a %s", method, endpoint)
		}
		return Envelope{Success: false, Message: msg}
	}

	// message y token solo existen en cuerpos objeto; los listados llegan
	// como array JSON de primer nivel y se entregan crudos.
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if !json.Valid(raw) {
			c.log.Warn().Str("endpoint", endpoint).Msg("cuerpo no parseable")
			return Envelope{Success: false, Message: msgConnectionError}
		}
		return Envelope{Success: true, Message: msgDefaultSuccess, Data: raw}
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("cuerpo no parseable")
		return Envelope{Success: false, Message: msgConnectionError}
	}

	msg := probe.Message
	if msg == "" {
		msg = msgDefaultSuccess
	}
	tok := probe.AccessToken
	if tok == "" {
		tok = probe.Token
	}
	return Envelope{Success: true, Message: msg, Data: raw, Token: tok}
}

// Atajos por método, en el estilo del núcleo original.

func (c *Client) Get(ctx context.Context, endpoint, token string) Envelope {
	return c.Request(ctx, endpoint, http.MethodGet, token, nil)
}

func (c *Client) Post(ctx context.Context, endpoint, token string, body any) Envelope {
	return c.Request(ctx, endpoint, http.MethodPost, token, body)
}

func (c *Client) Put(ctx context.Context, endpoint, token string, body any) Envelope {
	return c.Request(ctx, endpoint, http.MethodPut, token, body)
}

func (c *Client) Patch(ctx context.Context, endpoint, token string, body any) Envelope {
	return c.Request(ctx, endpoint, http.MethodPatch, token, body)
}

func (c *Client) Delete(ctx context.Context, endpoint, token string) Envelope {
	return c.Request(ctx, endpoint, http.MethodDelete, token, nil)
}

// Rutas dependientes del vocabulario configurado. Las rutas de auth y
// usuarios no se localizan en ninguna revisión del backend.

func (c *Client) productsPath() string {
	if c.locale == dto.LocaleES {
		return "/productos"
	}
	return "/products"
}

func (c *Client) productsBySupplierPath(supplierID int64) string {
	if c.locale == dto.LocaleES {
		return fmt.Sprintf("/productos/proveedor/%d", supplierID)
	}
	return fmt.Sprintf("/products/supplier/%d", supplierID)
}

func (c *Client) suppliersPath() string {
	if c.locale == dto.LocaleES {
		return "/suplidores"
	}
	return "/suppliers"
}

func (c *Client) supplierProductsPath(supplierID int64) string {
	if c.locale == dto.LocaleES {
		return fmt.Sprintf("/suplidores/%d/productos", supplierID)
	}
	return fmt.Sprintf("/suppliers/%d/products", supplierID)
}
