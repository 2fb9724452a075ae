/*
	point cloud viewer engine

	scene store
		point cloud (gpu buffers, fixed vertex count)
		bounds volume (aabb + wireframe edges)
	camera (orbit/fly hybrid, yaw/pitch pose)
	scheduler (fixed-rate pacing with sleep carry)
	shading (draw mode + light params -> per-frame uniforms)
	renderer (window, context, point program, draw submission)

	single threaded; the only blocking point is the scheduler sleep.
	scene replacement happens at frame boundaries, after which every
	handle of the old scene is dead.
*/

package engine
