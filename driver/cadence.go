package driver

import "time"

// Speed slider bounds.
const (
	MinSpeed = 1
	MaxSpeed = 100

	// batchThreshold is the slider value above which the frame rate is
	// fixed and extra speed comes from batching steps.
	batchThreshold = 50
)

// SpeedToCadence maps a speed slider value to a tick interval and a batch
// size. Values outside [MinSpeed, MaxSpeed] are clamped.
//
//	speed 1..50:   one step per tick, interval shrinking from 50 frames to 1.
//	speed 51..100: one tick per frame, 2..51 steps per tick.
func SpeedToCadence(speed int) (time.Duration, int) {
	speed = max(MinSpeed, min(MaxSpeed, speed))
	if speed <= batchThreshold {
		return FrameInterval * time.Duration(batchThreshold+1-speed), 1
	}

	return FrameInterval, speed - batchThreshold + 1
}
