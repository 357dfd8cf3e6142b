package vision

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

const (
	width  = 256
	height = 256
)

// Registry holds one loaded classifier per supported plant type. All
// models are loaded at construction; a missing or malformed artifact is
// a startup failure, never a request-time one. The registry is read-only
// after construction and safe for concurrent use.
type Registry struct {
	models map[string]*classifierModel
}

type classifierModel struct {
	mu sync.Mutex

	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	labels  []string
}

// NewRegistry loads every classifier in modelPaths, keyed by plant type.
// Each path must point at an ONNX artifact whose output length matches
// the plant's label set.
func NewRegistry(modelPaths map[string]string, onnxLibPath string) (*Registry, error) {
	if onnxLibPath != "" {
		ort.SetSharedLibraryPath(onnxLibPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("onnx init environment: %w", err)
	}

	registry := &Registry{models: make(map[string]*classifierModel, len(modelPaths))}
	for plantType, path := range modelPaths {
		labels := Labels(plantType)
		if labels == nil {
			registry.Close()
			return nil, fmt.Errorf("no label set for plant type %q", plantType)
		}
		m, err := loadModel(path, labels)
		if err != nil {
			registry.Close()
			return nil, fmt.Errorf("load %s model: %w", plantType, err)
		}
		registry.models[plantType] = m
	}
	return registry, nil
}

func loadModel(path string, labels []string) (*classifierModel, error) {
	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, fmt.Errorf("onnx get input/output info: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("onnx model has no inputs or outputs")
	}

	inputTensor, err := ort.NewEmptyTensor[float32](inputs[0].Dimensions)
	if err != nil {
		return nil, fmt.Errorf("onnx new input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](outputs[0].Dimensions)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("onnx new output tensor: %w", err)
	}
	if len(outputTensor.GetData()) != len(labels) {
		outputTensor.Destroy()
		inputTensor.Destroy()
		return nil, fmt.Errorf("model output size %d does not match %d labels",
			len(outputTensor.GetData()), len(labels))
	}

	inputNames := make([]string, len(inputs))
	for i := range inputs {
		inputNames[i] = inputs[i].Name
	}
	outputNames := make([]string, len(outputs))
	for i := range outputs {
		outputNames[i] = outputs[i].Name
	}

	session, err := ort.NewAdvancedSession(path, inputNames, outputNames,
		[]ort.Value{inputTensor}, []ort.Value{outputTensor}, nil)
	if err != nil {
		outputTensor.Destroy()
		inputTensor.Destroy()
		return nil, fmt.Errorf("onnx new session: %w", err)
	}

	return &classifierModel{
		session: session,
		input:   inputTensor,
		output:  outputTensor,
		labels:  labels,
	}, nil
}

// Supports reports whether a classifier is loaded for the plant type.
func (r *Registry) Supports(plantType string) bool {
	_, ok := r.models[plantType]
	return ok
}

func (r *Registry) Close() {
	for _, m := range r.models {
		if m.session != nil {
			m.session.Destroy()
		}
		if m.input != nil {
			m.input.Destroy()
		}
		if m.output != nil {
			m.output.Destroy()
		}
	}
	r.models = nil
}
