// Package notify implementa el puerto Notifier contra la API REST de
// SendGrid. Fire-and-forget: los fallos se loguean y jamás se propagan; una
// notificación caída no puede revertir la mutación primaria.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/config"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/logger"
)

var _ procurement.Notifier = (*SendGridNotifier)(nil)

const sendEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridNotifier envía correos transaccionales vía SendGrid.
// Con APIKey vacío actúa como no-op (entornos locales y tests de humo).
type SendGridNotifier struct {
	apiKey string
	from   string
	client *http.Client
	log    *logger.Logger
}

// New crea el notificador.
func New(cfg config.NotifyConfig, log *logger.Logger) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey: cfg.SendGridAPIKey,
		from:   cfg.FromEmail,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// QuoteSubmitted avisa al manager dueño de la orden que llegó una cotización.
func (n *SendGridNotifier) QuoteSubmitted(ctx context.Context, managerEmail, orderID, price string) {
	subject := "Nueva cotización recibida"
	body := fmt.Sprintf("La orden %s recibió una cotización por $%s.", orderID, price)
	n.send(ctx, managerEmail, subject, body)
}

// QuoteDecided avisa al proveedor la decisión sobre su cotización.
func (n *SendGridNotifier) QuoteDecided(ctx context.Context, vendorEmail, orderID, status string) {
	subject := "Cotización " + status
	body := fmt.Sprintf("Tu cotización sobre la orden %s fue marcada como %s.", orderID, status)
	n.send(ctx, vendorEmail, subject, body)
}

func (n *SendGridNotifier) send(ctx context.Context, to, subject, body string) {
	if n.apiKey == "" || to == "" {
		n.log.Debug().Str("to", to).Str("subject", subject).Msg("notificación omitida (sin API key o destinatario)")
		return
	}

	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": n.from},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": body},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Msg("serializar payload de correo")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendEndpoint, bytes.NewReader(raw))
	if err != nil {
		n.log.Error().Err(err).Msg("armar request a SendGrid")
		return
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warn().Err(err).Str("to", to).Msg("enviar correo")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.log.Warn().Int("status", resp.StatusCode).Str("to", to).Msg("SendGrid rechazó el correo")
		return
	}
	n.log.Debug().Str("to", to).Str("subject", subject).Msg("correo enviado")
}
