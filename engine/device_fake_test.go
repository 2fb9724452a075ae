package engine

import "fmt"

// fakeDevice records buffer lifetimes so scene lifecycle can be tested
// without a GL context.
type fakeDevice struct {
	nextID MeshID
	live   map[MeshID]string

	uploads    int
	releases   int
	pointDraws []MeshID
	lineDraws  []MeshID
	pointSize  float32

	failUploads bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		nextID: 1,
		live:   make(map[MeshID]string),
	}
}

func (d *fakeDevice) UploadPointCloud(positions, normals []float32) (MeshID, error) {
	if d.failUploads {
		return 0, fmt.Errorf("forced upload failure")
	}
	if len(positions) == 0 || len(positions) != len(normals) {
		return 0, fmt.Errorf("bad upload: %v positions, %v normals", len(positions), len(normals))
	}

	return d.track("points"), nil
}

func (d *fakeDevice) UploadWireframe(vertices []float32, indices []uint32) (MeshID, error) {
	if d.failUploads {
		return 0, fmt.Errorf("forced upload failure")
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return 0, fmt.Errorf("bad upload: %v vertices, %v indices", len(vertices), len(indices))
	}

	return d.track("lines"), nil
}

func (d *fakeDevice) track(kind string) MeshID {
	id := d.nextID
	d.nextID++
	d.live[id] = kind
	d.uploads++
	return id
}

func (d *fakeDevice) Release(id MeshID) {
	if _, ok := d.live[id]; !ok {
		panic(fmt.Sprintf("release of unknown mesh %v", id))
	}
	delete(d.live, id)
	d.releases++
}

func (d *fakeDevice) DrawPoints(id MeshID, count int32) {
	if d.live[id] != "points" {
		panic(fmt.Sprintf("point draw of dead or wrong mesh %v", id))
	}
	d.pointDraws = append(d.pointDraws, id)
}

func (d *fakeDevice) DrawLines(id MeshID, count int32) {
	if d.live[id] != "lines" {
		panic(fmt.Sprintf("line draw of dead or wrong mesh %v", id))
	}
	d.lineDraws = append(d.lineDraws, id)
}

func (d *fakeDevice) SetPointSize(size float32) {
	d.pointSize = size
}
