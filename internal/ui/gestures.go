package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	gesture := gh.classify(dx, dy, time.Since(gh.touchStartTime))
	gh.touchStartTime = time.Time{}

	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(_ *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// classify maps movement and duration to a gesture. Swipes win over long
// presses so a slow drag still counts as a swipe.
func (gh *GestureHandler) classify(dx, dy float32, duration time.Duration) GestureType {
	if dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold {
		return swipeDirection(dx, dy)
	}
	if duration >= gh.longPressDuration {
		return GestureLongPress
	}
	return GestureTap
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}
