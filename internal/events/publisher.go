// Package events publishes vehicle record changes over MQTT for downstream
// fleet consumers. Publishing is best effort; a failed publish is logged and
// never fails the request that caused it.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rideloop/vehicle-registry/internal/models"
	log "github.com/sirupsen/logrus"
)

const (
	EventVehicleCreated = "vehicle.created"
	EventVehicleUpdated = "vehicle.updated"
)

// recordEvent is the wire shape of a published change.
type recordEvent struct {
	Event     string         `json:"event"`
	Vehicle   models.Vehicle `json:"vehicle"`
	Timestamp time.Time      `json:"timestamp"`
}

// MQTTPublisher publishes record changes to an MQTT broker.
type MQTTPublisher struct {
	client      mqtt.Client
	topicPrefix string
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(broker, clientID, topicPrefix string) (*MQTTPublisher, error) {
	if topicPrefix == "" {
		topicPrefix = "vehicle-registry"
	}
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &MQTTPublisher{client: client, topicPrefix: topicPrefix}, nil
}

// VehicleCreated publishes a vehicle.created event.
func (p *MQTTPublisher) VehicleCreated(vehicle models.Vehicle) {
	p.publish(EventVehicleCreated, vehicle)
}

// VehicleUpdated publishes a vehicle.updated event.
func (p *MQTTPublisher) VehicleUpdated(vehicle models.Vehicle) {
	p.publish(EventVehicleUpdated, vehicle)
}

func (p *MQTTPublisher) publish(event string, vehicle models.Vehicle) {
	payload, err := json.Marshal(recordEvent{
		Event:     event,
		Vehicle:   vehicle,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.WithError(err).Warn("failed to encode record event")
		return
	}
	topic := fmt.Sprintf("%s/vehicles/%d", p.topicPrefix, vehicle.ID)
	token := p.client.Publish(topic, 0, false, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.WithError(token.Error()).WithField("topic", topic).Warn("failed to publish record event")
		}
	}()
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
