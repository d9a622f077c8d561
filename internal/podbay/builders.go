package podbay

import "github.com/jask/discovery/core/assembly"

// DoorHandlers builds a new *DoorHandler on every Build.
func DoorHandlers(settings assembly.Builder[Settings], env assembly.Builder[Env], doors assembly.Builder[DoorRecorder], dest assembly.Builder[Destinations], opts ...assembly.Option) assembly.Builder[*DoorHandler] {
	return assembly.New4(settings, env, doors, dest, NewDoorHandler, opts...)
}

func CrewHandlers(env assembly.Builder[Env], crew assembly.Builder[CrewLister], opts ...assembly.Option) assembly.Builder[*CrewHandler] {
	return assembly.New2(env, crew, NewCrewHandler, opts...)
}

func LogHandlers(settings assembly.Builder[Settings], env assembly.Builder[Env], history assembly.Builder[DoorHistory], opts ...assembly.Option) assembly.Builder[*LogHandler] {
	return assembly.New3(settings, env, history, NewLogHandler, opts...)
}
