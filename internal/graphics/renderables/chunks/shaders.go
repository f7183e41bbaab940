package chunks

// Directional-light shading from the face normal; no textures, no uniforms
// beyond the combined view-projection.
const drawVertexShader = `#version 330
uniform mat4 ViewProjection;
layout(location = 0) in vec4 vposition;
layout(location = 1) in vec3 normal;
out vec4 fcolor;
void main() {
    float brightness = dot(normal, normalize(vec3(1, 2, 3)));
    brightness = 0.3 + ((brightness > 0) ? 0.7*brightness : 0.3*brightness);
    fcolor = vec4(brightness, brightness, brightness, 1);
    gl_Position = ViewProjection*vposition;
}
`

const drawFragmentShader = `#version 330
in vec4 fcolor;
layout(location = 0) out vec4 FragColor;
void main() {
    FragColor = abs(fcolor);
}
`

// Trivial shaders for the occlusion pass: bounding boxes only need to
// generate depth-tested samples, color writes are masked off anyway.
const queryVertexShader = `#version 330
uniform mat4 ViewProjection;
layout(location = 0) in vec4 vposition;
void main() {
    gl_Position = ViewProjection*vposition;
}
`

const queryFragmentShader = `#version 330
void main() {
}
`
