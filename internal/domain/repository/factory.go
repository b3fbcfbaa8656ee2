package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Programs() ProgramRepository
}
