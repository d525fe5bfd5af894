package vertexcloud

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	ecs       *Ecs

	started bool
	quit    bool
	frame   uint64

	// Command Buffering
	pendingAdditions    []pendingAdd
	pendingRemovals     []EntityId
	pendingCompAdds     []pendingCompAdd
	pendingCompRemovals []pendingCompRemoval
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

type pendingCompAdd struct {
	eid        EntityId
	components []any
}

type pendingCompRemoval struct {
	eid        EntityId
	components []any
}

func newApp() *App {
	ecs := MakeEcs()
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		ecs:       &ecs,
	}
	app.systems[Startup.Name] = make([]systemFn, 0)
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules installs modules in order.
func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app, cmd)
	}
	app.FlushCommands()
	return app
}

// Tick runs every stage once. Startup systems run on the first tick only.
func (app *App) Tick() {
	if !app.started {
		app.started = true
		app.callStage(Startup)
	}

	for _, stage := range app.stages {
		app.callStage(stage)
	}
	app.frame++
}

// Run ticks until Quit is requested.
func (app *App) Run() {
	app.Logger().Infof("Running %d modules in %d stages", len(app.modules), len(app.stages))
	for !app.quit {
		app.Tick()
	}
	app.Logger().Infof("Stopped after %d frames", app.frame)
}

func (app *App) Quit() {
	app.quit = true
}

func (app *App) Quitting() bool {
	return app.quit
}

// Frame returns the number of completed ticks.
func (app *App) Frame() uint64 {
	return app.frame
}

func (app *App) callStage(stage Stage) {
	for _, system := range app.systems[stage.Name] {
		app.callSystem(system)
	}
	app.FlushCommands()
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s must be passed as a pointer to be used as a resource", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) hasResource(resourceType reflect.Type) bool {
	_, ok := app.resources[resourceType]
	return ok
}

// Resource returns the resource of type T, or nil if it was never added.
func Resource[T any](app *App) *T {
	if res, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return res.(*T)
	}
	return nil
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("System %s: argument %d must be a pointer, got %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(), i, argType))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			app.Logger().Errorf("%s", msg)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 &&
		len(app.pendingCompAdds) == 0 && len(app.pendingCompRemovals) == 0 {
		return
	}

	// Removals first so nothing is added to dead entities
	for _, eid := range app.pendingRemovals {
		if app.ecs.hasEntity(eid) {
			app.ecs.removeEntity(eid)
		}
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]

	for _, add := range app.pendingCompAdds {
		if app.ecs.hasEntity(add.eid) {
			app.ecs.addComponents(add.eid, add.components...)
		}
	}
	app.pendingCompAdds = app.pendingCompAdds[:0]

	for _, rm := range app.pendingCompRemovals {
		if app.ecs.hasEntity(rm.eid) {
			app.ecs.removeComponents(rm.eid, rm.components...)
		}
	}
	app.pendingCompRemovals = app.pendingCompRemovals[:0]
}
