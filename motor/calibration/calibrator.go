package calibration

import "tunepulse/hal"

// Calibration pacing. Times are wall-clock and converted to tick counts
// for the configured loop frequency.
const (
	settlingTimeUS = 25000
	stepTimeUS     = 2500

	oversampleCount = 100
	firstPassSteps  = 16
	pointsPer360El  = 4

	tablePoints = 200
)

// stage is the top-level calibration progression.
type stage uint8

const (
	stageSetup stage = iota
	stageReset
	stagePass0
	stagePass1
	stagePass2
	stageCheck
	stageReady
	stageError
)

// samplingState is the inner cycle every measurement goes through:
// rotate to the next step, wait out mechanical settling, then oversample
// the encoder.
type samplingState uint8

const (
	samplingSetup samplingState = iota
	samplingRotate
	samplingWait
	samplingSample
)

// Calibrator sweeps the electrical angle across a full mechanical
// revolution and records where the encoder actually lands, building a
// Table that later corrects every position reading. The sweep runs in
// stages: a small test motion first (checking the motor moves
// consistently at all), then a forward and a backward full rotation,
// then table validation. Any inconsistency parks the calibrator in a
// terminal error state with the drive amplitude expected to be cut by
// the caller.
type Calibrator struct {
	freq     uint16
	position int32

	stage stage
	cycle samplingState

	angleEl   uint16
	angleStep uint16
	stepIdx   uint16

	calIdx      int
	oversampled int32
	timeInState int

	direction int32
	speed     int32
	settling  int

	initPos int32
	tempPos int32
	difMax  int32
	difMin  int32

	table *Table
	log   hal.Logger
}

// NewCalibrator builds a calibrator for a control loop running at freq
// ticks per second.
func NewCalibrator(freq uint16, log hal.Logger) *Calibrator {
	return &Calibrator{
		freq:     freq,
		stage:    stageSetup,
		speed:    1,
		settling: ticksFromMicros(freq, settlingTimeUS),
		difMax:   -1 << 31,
		difMin:   1<<31 - 1,
		table:    NewTable(tablePoints, log),
		log:      log,
	}
}

// Tick advances calibration by one control period and returns the
// electrical angle to drive. encoderPos is the current multi-turn
// encoder position.
func (c *Calibrator) Tick(encoderPos int32) uint16 {
	c.position = encoderPos

	stablePos, ok := c.runSamplingCycle(c.angleStep)
	if !ok {
		return c.angleEl
	}

	switch c.stage {
	case stageSetup:
		// Let the mechanics settle through a few idle cycles first.
		c.calIdx = 10
		c.stage = stageReset
		c.speed = int32(ticksFromMicros(c.freq, stepTimeUS))
		if c.speed == 0 {
			c.speed = 1
		}

	case stageReset:
		if countdown(&c.calIdx) {
			c.initPos = stablePos
			c.tempPos = stablePos
			c.difMax = -1 << 31
			c.difMin = 1<<31 - 1

			c.angleStep = 0xFFFF / firstPassSteps
			c.calIdx = firstPassSteps
			c.stage = stagePass0
			c.log.Infof("calibration: testing single pole motion")
		}

	case stagePass0:
		dif := c.tempPos - stablePos
		c.tempPos = stablePos
		if dif < c.difMin {
			c.difMin = dif
		}
		if dif > c.difMax {
			c.difMax = dif
		}

		if countdown(&c.calIdx) {
			travel := c.initPos - c.tempPos
			c.direction = sign(travel)
			if c.direction == 0 {
				c.log.Errorf("calibration: motor did not move")
				c.stage = stageError
				return c.angleEl
			}

			avgStep := travel * c.direction / firstPassSteps
			deviation := c.difMax - c.difMin
			if avgStep < deviation {
				c.log.Errorf("calibration: inconsistent motion (avg step %d, deviation %d)", avgStep, deviation)
				c.stage = stageError
				return c.angleEl
			}
			c.log.Debugf("calibration: motion direction %d", c.direction)

			c.stage = stagePass1
			c.angleStep = 0xFFFF / pointsPer360El
			c.speed = -c.speed * c.direction
			c.calIdx = 0
			c.initPos = stablePos
			c.table.Reset(pointsPer360El)
			c.log.Infof("calibration: forward rotation with sampling")
		}

	case stagePass1:
		// Overshoot one full turn by a third of a step so the backward
		// pass has every index covered.
		avgStep := (stablePos - c.initPos) / int32(c.calIdx+1)
		if stablePos-c.initPos > 0xFFFF+avgStep/3 {
			c.stage = stagePass2
			c.speed = -c.speed
			c.log.Debugf("calibration: collected %d points", c.calIdx)
			c.log.Infof("calibration: backward rotation with sampling")
			return c.angleEl
		}
		if !c.table.FillFirst(c.calIdx, uint16(stablePos)) {
			c.stage = stageError
			return c.angleEl
		}
		c.calIdx++

	case stagePass2:
		c.calIdx--
		c.table.FillSecond(c.calIdx, uint16(stablePos))
		if c.calIdx == 0 {
			c.stage = stageCheck
			c.angleEl = 0
			c.log.Infof("calibration: sweeps finished, validating")
		}

	case stageCheck:
		if c.table.Check() {
			c.stage = stageReady
		} else {
			c.stage = stageError
		}

	case stageReady, stageError:
	}
	return c.angleEl
}

// Ready reports a validated calibration.
func (c *Calibrator) Ready() bool { return c.stage == stageReady }

// Failed reports a terminal calibration error.
func (c *Calibrator) Failed() bool { return c.stage == stageError }

// Correction maps a raw encoder angle through the calibration table,
// returning the corrected angle and the electrical-period angle.
func (c *Calibrator) Correction(pos uint16) (uint16, uint16) {
	return c.table.CorrectPos(pos)
}

// runSamplingCycle performs one rotate/wait/sample measurement. It
// reports ok only on the tick the averaged stable position is ready.
func (c *Calibrator) runSamplingCycle(steps uint16) (int32, bool) {
	switch c.cycle {
	case samplingSetup:
		c.oversampled = 0
		c.cycle = samplingRotate
		c.timeInState = int(steps) / int(abs32(c.speed))
		c.stepIdx = c.angleEl + uint16(int32(steps)*sign(c.speed))

	case samplingRotate:
		c.angleEl += uint16(c.speed)
		if countdown(&c.timeInState) {
			c.cycle = samplingWait
			c.timeInState = c.settling
			// Snap to the exact step target; the incremental moves can
			// land short by a rounding remainder.
			c.angleEl = c.stepIdx
		}

	case samplingWait:
		if countdown(&c.timeInState) {
			c.cycle = samplingSample
			c.timeInState = oversampleCount
		}

	case samplingSample:
		c.oversampled += c.position
		c.timeInState--
		if c.timeInState == 0 {
			c.cycle = samplingSetup
			return c.oversampled / oversampleCount, true
		}
	}
	return 0, false
}

func countdown(counter *int) bool {
	if *counter > 0 {
		*counter--
		return false
	}
	return true
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// ticksFromMicros converts a wall-clock duration to control ticks.
func ticksFromMicros(freq uint16, us int) int {
	return int(uint32(freq)) * us / 1000000
}
