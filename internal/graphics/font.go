package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// glyph describes a single character's placement and metrics within the atlas
type glyph struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	atlasX, atlasY float32
	// Glyph bitmap size in pixels
	width, height float32
	// Bearing (offset from baseline) in pixels
	bearingX, bearingY float32
	// Advance in pixels
	advance int
}

// fontAtlas holds the baked glyph texture and per-glyph metadata
type fontAtlas struct {
	textureID uint32
	w, h      int
	glyphs    map[rune]glyph
}

const fontVertexShader = `#version 330
layout(location = 0) in vec4 vertex;
out vec2 uv;
uniform mat4 projection;
void main() {
    uv = vertex.zw;
    gl_Position = projection*vec4(vertex.xy, 0, 1);
}
`

const fontFragmentShader = `#version 330
in vec2 uv;
layout(location = 0) out vec4 FragColor;
uniform sampler2D text;
uniform vec3 textColor;
void main() {
    FragColor = vec4(textColor, texture(text, uv).r);
}
`

// bakeFontAtlas rasterizes the ASCII printable range of the bundled Go
// Regular face into a single-channel texture atlas.
func bakeFontAtlas(pixels int) (*fontAtlas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const atlasW = 512
	const atlasH = 256
	const padding = 1

	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasW, atlasH))
	glyphs := make(map[rune]glyph)

	// Row-pack ASCII 32..126 into the canvas and record metrics
	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := rune(32); r <= rune(126); r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw := dr.Dx()
		gh := dr.Dy()
		if gw == 0 || gh == 0 {
			// Space or non-drawable glyph; still record advance
			glyphs[r] = glyph{advance: int(math.Round(float64(advance) / 64.0))}
			continue
		}

		if offsetX+gw > atlasW {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		if offsetY+gh > atlasH {
			return nil, fmt.Errorf("font atlas overflow at %q", r)
		}

		dstRect := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(atlasImg, dstRect, mask, maskp, draw.Src)

		glyphs[r] = glyph{
			atlasX:   float32(offsetX),
			atlasY:   float32(offsetY),
			width:    float32(gw),
			height:   float32(gh),
			bearingX: float32(dr.Min.X),
			bearingY: float32(-dr.Min.Y),
			advance:  int(math.Round(float64(advance) / 64.0)),
		}

		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}

	// Upload as a single-channel texture
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlasW), int32(atlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlasImg.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return &fontAtlas{textureID: texture, w: atlasW, h: atlasH, glyphs: glyphs}, nil
}

// TextRenderer draws ASCII text in screen space from a prebaked atlas.
type TextRenderer struct {
	atlas      *fontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao, vbo   uint32
}

// NewTextRenderer bakes the atlas at the given pixel size and compiles the
// text shader. width and height set the initial pixel projection.
func NewTextRenderer(pixels, width, height int) (*TextRenderer, error) {
	atlas, err := bakeFontAtlas(pixels)
	if err != nil {
		return nil, err
	}
	shader, err := NewShader(fontVertexShader, fontFragmentShader)
	if err != nil {
		return nil, err
	}
	tr := &TextRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1),
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return tr, nil
}

// SetViewport updates the pixel projection after a resize.
func (tr *TextRenderer) SetViewport(width, height int) {
	tr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// RenderLines draws multiple lines in a single pass, starting at (x, yStart)
// with lineStep pixels between baselines.
func (tr *TextRenderer) RenderLines(lines []string, x, yStart, lineStep float32, color mgl32.Vec3) {
	if len(lines) == 0 {
		return
	}

	verts := make([]float32, 0, 256)
	y := yStart
	for _, line := range lines {
		verts = tr.appendLineVertices(verts, line, x, y)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	tr.shader.Use()
	tr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	tr.shader.SetMatrix4("projection", &tr.projection[0])
	tr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.atlas.textureID)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)

	// Orphan then fill to avoid stalling on the previous frame's draw
	size := 4 * len(verts)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (tr *TextRenderer) appendLineVertices(verts []float32, line string, x, y float32) []float32 {
	for _, r := range line {
		g, ok := tr.atlas.glyphs[r]
		if !ok {
			if space, ok2 := tr.atlas.glyphs[' ']; ok2 {
				x += float32(space.advance)
			}
			continue
		}
		if g.width > 0 && g.height > 0 {
			verts = append(verts, tr.glyphQuad(g, x, y)...)
		}
		x += float32(g.advance)
	}
	return verts
}

func (tr *TextRenderer) glyphQuad(g glyph, x, y float32) []float32 {
	xPos := x + g.bearingX
	yPos := y - g.bearingY
	w := g.width
	h := g.height

	u0 := g.atlasX / float32(tr.atlas.w)
	v0 := g.atlasY / float32(tr.atlas.h)
	u1 := (g.atlasX + g.width) / float32(tr.atlas.w)
	v1 := (g.atlasY + g.height) / float32(tr.atlas.h)

	return []float32{
		xPos, yPos + h, u0, v1,
		xPos, yPos, u0, v0,
		xPos + w, yPos, u1, v0,

		xPos, yPos + h, u0, v1,
		xPos + w, yPos, u1, v0,
		xPos + w, yPos + h, u1, v1,
	}
}

// Dispose releases the atlas texture, shader and buffers.
func (tr *TextRenderer) Dispose() {
	if tr.atlas != nil && tr.atlas.textureID != 0 {
		gl.DeleteTextures(1, &tr.atlas.textureID)
		tr.atlas.textureID = 0
	}
	if tr.shader != nil {
		tr.shader.Delete()
	}
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
}
