// Package mailer delivers orders through a transactional-email REST API.
package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
)

type Mailer interface {
	Send(ctx context.Context, order *entity.OrderContext) error
}

type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Merchant   string
	Timeout    time.Duration
}

type request struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

type emailMailer struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &emailMailer{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

func (m *emailMailer) Send(ctx context.Context, order *entity.OrderContext) error {
	body, err := json.Marshal(request{
		ServiceID:      m.cfg.ServiceID,
		TemplateID:     m.cfg.TemplateID,
		UserID:         m.cfg.PublicKey,
		TemplateParams: TemplateParams(m.cfg.Merchant, order),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: email API %s: %s", entity.ErrDeliveryFailed, resp.Status, bytes.TrimSpace(msg))
	}
	return nil
}

// TemplateParams flattens an order into the fields the email template uses.
func TemplateParams(merchant string, order *entity.OrderContext) map[string]string {
	f := order.Form
	return map[string]string{
		"to_email":      merchant,
		"order_id":      order.ID,
		"customer_name": f.Name,
		"email":         f.Email,
		"phone":         f.Phone,
		"address":       f.Address,
		"region":        f.Region,
		"note":          f.Note,
		"product":       order.ProductName,
		"color":         f.Color,
		"size":          f.Size,
		"quantity":      strconv.Itoa(f.Quantity),
		"product_price": strconv.Itoa(order.Quote.ProductPrice),
		"shipping_cost": strconv.Itoa(order.Quote.ShippingCost),
		"total":         strconv.Itoa(order.Quote.Total),
		"has_front":     yesNo(order.HasFront),
		"has_back":      yesNo(order.HasBack),
		"front_design":  dataURL(order.Front),
		"back_design":   dataURL(order.Back),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dataURL(a entity.Artifact) string {
	if a.Empty() {
		return "none"
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(a.Data)
}
