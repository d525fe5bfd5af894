package vertexcloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type OrbitCameraModule struct{}

func (OrbitCameraModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(OrbitCameraSystem).InStage(Update))
}

// OrbitCameraComponent circles a camera around Target at Radius and Height,
// Speed radians per second.
type OrbitCameraComponent struct {
	Target mgl32.Vec3
	Radius float32
	Height float32
	Speed  float32
	Angle  float32
}

func OrbitCameraSystem(cmd *Commands, time *Time) {
	dt := time.Seconds()

	MakeQuery2[CameraComponent, OrbitCameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, orbit *OrbitCameraComponent) bool {
		if cam.Camera == nil {
			return true
		}

		orbit.Angle = float32(math.Mod(float64(orbit.Angle+orbit.Speed*dt), 2*math.Pi))
		sin, cos := math.Sincos(float64(orbit.Angle))
		cam.Camera.Position = orbit.Target.Add(mgl32.Vec3{
			float32(sin) * orbit.Radius,
			orbit.Height,
			float32(cos) * orbit.Radius,
		})
		cam.Camera.LookAt(orbit.Target)
		return true
	})
}
