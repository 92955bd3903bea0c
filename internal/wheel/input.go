package wheel

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrSessionEnded is returned by Run when the session it drives is no longer active.
var ErrSessionEnded = errors.New("wheel: spin session is not active")

// BeginDrag starts a manual drag at pointer (x, y), relative to the disc
// centre. It is refused while spinning.
func (c *Controller) BeginDrag(x, y float64) bool {
	if c.state == Spinning {
		return false
	}
	c.cancelAmbient()
	c.state = Dragging
	c.dragStartAngle = c.angle
	c.dragStartPointer = math.Atan2(y, x)
	c.dragX, c.dragY = x, y
	c.dragDistance = 0
	return true
}

// DragTo rotates the disc so it follows the pointer.
func (c *Controller) DragTo(x, y float64) {
	if c.state != Dragging {
		return
	}
	c.angle = c.dragStartAngle + (math.Atan2(y, x) - c.dragStartPointer)
	c.dragDistance = math.Max(c.dragDistance, math.Hypot(x-c.dragX, y-c.dragY))
}

// EndDrag releases the disc. A pull longer than the drag threshold starts a
// spin from the current angle; a short one is treated as a stray click.
func (c *Controller) EndDrag(x, y float64, now time.Time) (SessionID, bool) {
	if c.state != Dragging {
		return SessionID{}, false
	}
	c.DragTo(x, y)
	c.state = Idle
	if c.dragDistance <= c.dragThreshold {
		return SessionID{}, false
	}
	return c.StartSpin(now)
}

// StartAmbient arms the idle rotation and returns the token its ticks must
// carry. Any earlier token is invalidated. It returns false unless idle.
func (c *Controller) StartAmbient() (AmbientToken, bool) {
	if c.state != Idle {
		return AmbientToken{}, false
	}
	c.ambient = AmbientToken(uuid.New())
	return c.ambient, true
}

// Ambient applies one idle rotation step. It reports whether the host
// should schedule the next tick.
func (c *Controller) Ambient(token AmbientToken) bool {
	if c.state != Idle || uuid.UUID(token) == uuid.Nil || token != c.ambient {
		return false
	}
	c.angle += c.ambientStep
	return true
}

func (c *Controller) cancelAmbient() {
	c.ambient = AmbientToken{}
}

// Run pumps frames for session id on a ticker until the spin completes.
// It must be the only caller into the controller while it runs.
func (c *Controller) Run(ctx context.Context, id SessionID, interval time.Duration) (Winner, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Winner{}, ctx.Err()
		case now := <-ticker.C:
			res := c.Frame(id, now)
			if !res.Applied {
				return Winner{}, ErrSessionEnded
			}
			if res.Done {
				return res.Winner, nil
			}
		}
	}
}
