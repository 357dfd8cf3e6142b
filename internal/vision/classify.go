package vision

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Classify decodes imageData, preprocesses it to the model input contract
// and runs the plant's classifier. It returns the label at the argmax
// output index together with the raw probability at that index.
func (r *Registry) Classify(plantType string, imageData []byte) (string, float64, error) {
	m, ok := r.models[plantType]
	if !ok {
		return "", 0, fmt.Errorf("no classifier loaded for plant type %q", plantType)
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", 0, fmt.Errorf("decode image: %w", err)
	}

	inputData := Preprocess(img)

	m.mu.Lock()
	inData := m.input.GetData()
	if len(inData) != len(inputData) {
		m.mu.Unlock()
		return "", 0, fmt.Errorf("input tensor size %d, preprocessed %d", len(inData), len(inputData))
	}
	copy(inData, inputData)
	err = m.session.Run()
	if err != nil {
		m.mu.Unlock()
		return "", 0, fmt.Errorf("onnx run: %w", err)
	}
	scores := make([]float32, len(m.output.GetData()))
	copy(scores, m.output.GetData())
	m.mu.Unlock()

	idx := ArgMax(scores)
	if idx < 0 || idx >= len(m.labels) {
		return "", 0, fmt.Errorf("argmax index %d out of range for %d labels", idx, len(m.labels))
	}
	return m.labels[idx], float64(scores[idx]), nil
}

// Preprocess resizes img to 256x256 RGB and packs it as a [1,256,256,3]
// float32 tensor with every channel scaled into [0,1].
func Preprocess(img image.Image) []float32 {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	out := make([]float32, 1*height*width*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := dst.RGBAAt(x, y)
			base := (y*width + x) * 3
			out[base+0] = float32(c.R) / 255.0
			out[base+1] = float32(c.G) / 255.0
			out[base+2] = float32(c.B) / 255.0
		}
	}
	return out
}

// ArgMax returns the index of the largest value, -1 for an empty slice.
func ArgMax(values []float32) int {
	idx := -1
	for i, v := range values {
		if idx < 0 || v > values[idx] {
			idx = i
		}
	}
	return idx
}
