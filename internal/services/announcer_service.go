package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/slack-go/slack"
)

// SlackClient is the slice of the Slack API the announcer needs; tests stub
// it.
type SlackClient interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

type StatusReader interface {
	CurrentStatus(now time.Time) (StatusView, error)
}

// AnnouncerService posts the day's duty roster to a Slack channel once per
// calendar day. It is disabled entirely when no client or channel is
// configured.
type AnnouncerService struct {
	statuses StatusReader
	client   SlackClient
	channel  string
	interval time.Duration
	location *time.Location

	mu               sync.Mutex
	lastAnnouncedDay string
}

func NewAnnouncerService(statuses StatusReader, client SlackClient, channel string, location *time.Location) *AnnouncerService {
	if location == nil {
		location = time.UTC
	}
	return &AnnouncerService{
		statuses: statuses,
		client:   client,
		channel:  strings.TrimSpace(channel),
		interval: time.Hour,
		location: location,
	}
}

func (service *AnnouncerService) Enabled() bool {
	return service.client != nil && service.channel != ""
}

func (service *AnnouncerService) Start(ctx context.Context) {
	if !service.Enabled() {
		return
	}

	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		service.run(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case tick := <-ticker.C:
				service.run(tick)
			}
		}
	}()
}

func (service *AnnouncerService) run(now time.Time) {
	localNow := now.In(service.location)
	// The day shift begins at 08:00; announcing earlier would name the
	// previous night's roster.
	if localNow.Hour() < dayShiftStartHour {
		return
	}

	today := DayKey(localNow, service.location)
	service.mu.Lock()
	alreadySent := service.lastAnnouncedDay == today
	service.mu.Unlock()
	if alreadySent {
		return
	}

	status, err := service.statuses.CurrentStatus(now)
	if err != nil {
		log.Printf("announcer: fetch current status failed: %v", err)
		return
	}
	if !status.Assigned {
		return
	}

	message := FormatDutyMessage(status)
	if _, _, err := service.client.PostMessage(
		service.channel,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	); err != nil {
		log.Printf("announcer: post to %s failed: %v", service.channel, err)
		return
	}

	service.mu.Lock()
	service.lastAnnouncedDay = today
	service.mu.Unlock()
}

func FormatDutyMessage(status StatusView) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "On call today (%s): %s [%s]", status.Date, strings.Join(status.Names, ", "), status.Mode)
	if len(status.SecondNames) > 0 {
		fmt.Fprintf(&builder, " | secondary: %s", strings.Join(status.SecondNames, ", "))
	}
	return builder.String()
}
