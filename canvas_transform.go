package gcanvas

// Save pushes a copy of the current transform onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the most recently saved transform and makes it current.
// Calling Restore without a matching Save leaves the transform unchanged.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		Logger().Warn("gcanvas: restore without matching save")
		return
	}
	c.ctm = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SaveCount returns the number of saved transforms.
func (c *Canvas) SaveCount() int {
	return len(c.stack)
}

// CTM returns the current transform.
func (c *Canvas) CTM() Matrix {
	return c.ctm
}

// Concat pre-multiplies the current transform by m: geometry is mapped by
// m first, then by the previous transform.
func (c *Canvas) Concat(m Matrix) {
	c.ctm = c.ctm.Concat(m)
}

// Translate concatenates a translation.
func (c *Canvas) Translate(tx, ty float32) {
	c.Concat(Translate(tx, ty))
}

// Scale concatenates a scale.
func (c *Canvas) Scale(sx, sy float32) {
	c.Concat(Scale(sx, sy))
}

// Rotate concatenates a rotation by radians.
func (c *Canvas) Rotate(radians float32) {
	c.Concat(Rotate(radians))
}
