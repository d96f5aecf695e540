package core

import (
	"iter"
	"log/slog"
)

// Layer groups nets and binds them to a storage collaborator. The
// lifecycle hooks forward to the bound Storage; an unbound layer
// loads and unloads as a no-op.
type Layer struct {
	object
	Name    string
	storage Storage
}

// NewLayer creates a detached layer. The annotation map may be nil.
func NewLayer(name string, annotations map[string]any) *Layer {
	return &Layer{object: newObject(annotations), Name: name}
}

func (l *Layer) Kind() Kind              { return KindLayer }
func (l *Layer) AllowedChildren() []Kind { return []Kind{KindNet} }

func (l *Layer) Hash() string         { return structuralHash(l, l.Name) }
func (l *Layer) SemanticHash() string { return semanticHash(l.Name) }

func (l *Layer) clone() Object {
	dup := &Layer{Name: l.Name, storage: l.storage}
	dup.object.cloneInto(dup, &l.object)
	return dup
}

// BindStorage attaches the storage collaborator the lifecycle hooks
// call into. Nil detaches.
func (l *Layer) BindStorage(s Storage) {
	l.storage = s
}

// Storage returns the bound collaborator, or nil.
func (l *Layer) Storage() Storage {
	return l.storage
}

// OnLoad forwards to Storage.LoadLayer. The core does not interpret
// or recover from collaborator failures; they are logged so a failed
// load is observable.
func (l *Layer) OnLoad() {
	if l.storage == nil {
		return
	}
	if err := l.storage.LoadLayer(l); err != nil {
		slog.Error("failed to load layer", "layer", l.Name, "err", err)
	}
}

// OnUnload forwards to Storage.UnloadLayer.
func (l *Layer) OnUnload() {
	if l.storage == nil {
		return
	}
	if err := l.storage.UnloadLayer(l); err != nil {
		slog.Error("failed to unload layer", "layer", l.Name, "err", err)
	}
}

// AddNet composes an existing net into the layer.
func (l *Layer) AddNet(net *Net) (*Net, error) {
	if _, err := Compose(l, net); err != nil {
		return nil, err
	}
	return net, nil
}

// CreateNet creates a fresh net inside the layer.
func (l *Layer) CreateNet() (*Net, error) {
	return l.AddNet(NewNet(nil))
}

// WalkNets yields the layer's nets lazily.
func (l *Layer) WalkNets() iter.Seq[*Net] {
	return func(yield func(*Net) bool) {
		for _, child := range l.children {
			if net, ok := child.(*Net); ok {
				if !yield(net) {
					return
				}
			}
		}
	}
}

// Matrix is the outermost container. Its active flag gates cascading
// load/unload notifications to its layers.
type Matrix struct {
	object
	Name   string
	active bool
}

// NewMatrix creates an inactive matrix.
func NewMatrix(name string, annotations map[string]any) *Matrix {
	return &Matrix{object: newObject(annotations), Name: name}
}

func (m *Matrix) Kind() Kind              { return KindMatrix }
func (m *Matrix) AllowedChildren() []Kind { return []Kind{KindLayer} }

func (m *Matrix) Hash() string         { return structuralHash(m, m.Name) }
func (m *Matrix) SemanticHash() string { return semanticHash(m.Name) }

func (m *Matrix) clone() Object {
	dup := &Matrix{Name: m.Name}
	dup.object.cloneInto(dup, &m.object)
	return dup
}

// Active reports whether the matrix has been started.
func (m *Matrix) Active() bool {
	return m.active
}

// Start activates the matrix and loads every direct layer exactly
// once. Starting an active matrix is a no-op.
func (m *Matrix) Start() {
	if m.active {
		return
	}
	m.active = true
	for _, layer := range m.Layers() {
		layer.OnLoad()
	}
}

// Stop unloads every direct layer and deactivates the matrix.
// Stopping an inactive matrix is a no-op.
func (m *Matrix) Stop() {
	if !m.active {
		return
	}
	for _, layer := range m.Layers() {
		layer.OnUnload()
	}
	m.active = false
}

// AddLayer composes an existing layer into the matrix. A layer added
// to an active matrix is loaded immediately.
func (m *Matrix) AddLayer(layer *Layer) (*Layer, error) {
	if _, err := Compose(m, layer); err != nil {
		return nil, err
	}
	if m.active {
		layer.OnLoad()
	}
	return layer, nil
}

// CreateLayer creates a fresh layer inside the matrix.
func (m *Matrix) CreateLayer(name string) (*Layer, error) {
	return m.AddLayer(NewLayer(name, nil))
}

// Layers returns the matrix's layers in insertion order.
func (m *Matrix) Layers() []*Layer {
	layers := make([]*Layer, 0, len(m.children))
	for _, child := range m.children {
		if layer, ok := child.(*Layer); ok {
			layers = append(layers, layer)
		}
	}
	return layers
}

// WalkLayers yields the matrix's layers lazily.
func (m *Matrix) WalkLayers() iter.Seq[*Layer] {
	return func(yield func(*Layer) bool) {
		for _, layer := range m.Layers() {
			if !yield(layer) {
				return
			}
		}
	}
}
