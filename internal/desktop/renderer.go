package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"spaceaction/internal/game"
)

// TrailFade is the alpha of the black wash laid over the canvas each frame.
// Anything below 1 leaves motion trails.
const TrailFade = 0.1

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws into a persistent canvas-sized framebuffer and blits it into
// the window, so the translucent wash accumulates trails across frames.
type Renderer struct {
	canvasW, canvasH int

	// Rect program.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32

	rectUCamera     int32
	rectUZoom       int32
	rectUResolution int32

	// Canvas framebuffer and blit program.
	canvasFBO uint32
	canvasTex uint32
	blitProg  uint32
	blitVAO   uint32
	blitVBO   uint32

	blitUCamera     int32
	blitUZoom       int32
	blitUResolution int32
	blitUCanvas     int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Expanded triangle vertices, reused every frame.
	vertBuf []float32
}

func NewRenderer(canvasW, canvasH int) (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	blitProg, err := linkProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("blit program: %w", err)
	}

	r := &Renderer{
		canvasW:  canvasW,
		canvasH:  canvasH,
		rectProg: rectProg,
		blitProg: blitProg,
	}

	// Rect VAO/VBO: streaming triangles, pos(2) + color(4) per vertex.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	stride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 1024*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.rectVAO = vao
	r.rectVBO = vbo

	gl.UseProgram(rectProg)
	r.rectUCamera = gl.GetUniformLocation(rectProg, gl.Str("uCamera\x00"))
	r.rectUZoom = gl.GetUniformLocation(rectProg, gl.Str("uZoom\x00"))
	r.rectUResolution = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	// Blit VAO/VBO: one canvas quad, pos(2) + uv(2). The canvas texture is
	// stored bottom-up, so v runs 1 at the top edge.
	w, h := float32(canvasW), float32(canvasH)
	quad := [24]float32{
		0, 0, 0, 1,
		w, 0, 1, 1,
		0, h, 0, 0,
		w, 0, 1, 1,
		w, h, 1, 0,
		0, h, 0, 0,
	}
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, glOffset(2*4))
	r.blitVAO = vao
	r.blitVBO = vbo

	gl.UseProgram(blitProg)
	r.blitUCamera = gl.GetUniformLocation(blitProg, gl.Str("uCamera\x00"))
	r.blitUZoom = gl.GetUniformLocation(blitProg, gl.Str("uZoom\x00"))
	r.blitUResolution = gl.GetUniformLocation(blitProg, gl.Str("uResolution\x00"))
	r.blitUCanvas = gl.GetUniformLocation(blitProg, gl.Str("uCanvas\x00"))
	gl.Uniform1i(r.blitUCanvas, 0)

	if err := r.initCanvas(); err != nil {
		r.Destroy()
		return nil, err
	}

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) initCanvas() error {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(r.canvasW), int32(r.canvasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	r.canvasTex = tex

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	r.canvasFBO = fbo
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("canvas framebuffer incomplete: 0x%x", status)
	}
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.blitVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.blitVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.blitProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.fontTex, r.canvasTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	if r.canvasFBO != 0 {
		gl.DeleteFramebuffers(1, &r.canvasFBO)
	}
}

// BeginCanvas binds the canvas framebuffer and washes it with translucent
// black.
func (r *Renderer) BeginCanvas() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.canvasFBO)
	gl.Viewport(0, 0, int32(r.canvasW), int32(r.canvasH))
	wash := []float32{0, 0, float32(r.canvasW), float32(r.canvasH), 0, 0, 0, TrailFade}
	r.drawRects(wash, float32(r.canvasW)/2, float32(r.canvasH)/2, 1, r.canvasW, r.canvasH)
}

// DrawCanvasRects draws a game render buffer onto the canvas.
func (r *Renderer) DrawCanvasRects(buf []float32) {
	r.drawRects(buf, float32(r.canvasW)/2, float32(r.canvasH)/2, 1, r.canvasW, r.canvasH)
}

// Present clears the window and blits the canvas through cam.
func (r *Renderer) Present(cam Camera, fbW, fbH int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	cx, cy := cam.EffectivePos()
	gl.UseProgram(r.blitProg)
	gl.BindVertexArray(r.blitVAO)
	gl.Uniform2f(r.blitUCamera, float32(cx), float32(cy))
	gl.Uniform1f(r.blitUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.blitUResolution, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.canvasTex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawScreenRects draws rectangles given in framebuffer pixels.
func (r *Renderer) DrawScreenRects(buf []float32, fbW, fbH int) {
	r.drawRects(buf, float32(fbW)/2, float32(fbH)/2, 1, fbW, fbH)
}

// drawRects expands [x, y, w, h, r, g, b, a] records into two triangles each.
func (r *Renderer) drawRects(buf []float32, camX, camY, zoom float32, resW, resH int) {
	if len(buf) < game.RectStride {
		return
	}
	v := r.vertBuf[:0]
	for i := 0; i+game.RectStride <= len(buf); i += game.RectStride {
		x0, y0 := buf[i], buf[i+1]
		x1, y1 := x0+buf[i+2], y0+buf[i+3]
		cr, cg, cb, ca := buf[i+4], buf[i+5], buf[i+6], buf[i+7]
		v = append(v,
			x0, y0, cr, cg, cb, ca,
			x1, y0, cr, cg, cb, ca,
			x0, y1, cr, cg, cb, ca,
			x1, y0, cr, cg, cb, ca,
			x1, y1, cr, cg, cb, ca,
			x0, y1, cr, cg, cb, ca,
		)
	}
	r.vertBuf = v

	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.Uniform2f(r.rectUCamera, camX, camY)
	gl.Uniform1f(r.rectUZoom, zoom)
	gl.Uniform2f(r.rectUResolution, float32(resW), float32(resH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(v)*4, gl.Ptr(v), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(v)/6))
	gl.Disable(gl.BLEND)
}
