// Package mq forwards domain events to an MQTT broker.
package mq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/config"
)

const publishTimeout = 3 * time.Second

// ErrNotConnected is returned when publishing without a live broker connection.
var ErrNotConnected = errors.New("mqtt not connected")

// Connect dials the broker described by cfg.
func Connect(cfg config.MQTTConfig, logger *zap.Logger) (mqtt.Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("MQTT broker URL is empty")
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "fusionware-storefront"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetKeepAlive(30 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(2 * time.Second)

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn("mqtt connection lost", zap.Error(err))
	}
	opts.OnConnect = func(_ mqtt.Client) {
		logger.Info("mqtt connected", zap.String("broker", cfg.BrokerURL), zap.String("client_id", clientID))
	}

	c := mqtt.NewClient(opts)
	tok := c.Connect()
	if !tok.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", cfg.BrokerURL)
	}
	if err := tok.Error(); err != nil {
		return nil, err
	}
	return c, nil
}

// Publisher writes JSON payloads to <prefix>/<name> topics.
type Publisher struct {
	client mqtt.Client
	prefix string
}

// NewPublisher wraps a connected client.
func NewPublisher(client mqtt.Client, prefix string) *Publisher {
	return &Publisher{client: client, prefix: prefix}
}

// Topic returns the full topic for an event name.
func (p *Publisher) Topic(name string) string {
	if p.prefix == "" {
		return name
	}
	return p.prefix + "/" + name
}

// Publish sends payload with QoS 1, waiting a bounded time for the ack.
func (p *Publisher) Publish(name string, payload any) error {
	if p.client == nil || !p.client.IsConnected() {
		return ErrNotConnected
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	tok := p.client.Publish(p.Topic(name), 1, false, b)
	if !tok.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", p.Topic(name))
	}
	return tok.Error()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.client != nil {
		p.client.Disconnect(250)
	}
}
