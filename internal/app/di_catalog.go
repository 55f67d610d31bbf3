package app

import (
	"fmt"

	directorHTTP "github.com/allisson/moviecatalog/internal/director/http"
	directorRepository "github.com/allisson/moviecatalog/internal/director/repository"
	directorUseCase "github.com/allisson/moviecatalog/internal/director/usecase"
	genreHTTP "github.com/allisson/moviecatalog/internal/genre/http"
	genreRepository "github.com/allisson/moviecatalog/internal/genre/repository"
	genreUseCase "github.com/allisson/moviecatalog/internal/genre/usecase"
	movieHTTP "github.com/allisson/moviecatalog/internal/movie/http"
	movieRepository "github.com/allisson/moviecatalog/internal/movie/repository"
	movieUseCase "github.com/allisson/moviecatalog/internal/movie/usecase"
)

// DirectorRepository returns the director repository based on database driver.
func (c *Container) DirectorRepository() (directorUseCase.DirectorRepository, error) {
	var err error
	c.directorRepositoryInit.Do(func() {
		c.directorRepository, err = c.initDirectorRepository()
		if err != nil {
			c.initErrors["directorRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["directorRepository"]; exists {
		return nil, storedErr
	}
	return c.directorRepository, nil
}

// DirectorUseCase returns the director use case.
func (c *Container) DirectorUseCase() (directorUseCase.UseCase, error) {
	var err error
	c.directorUseCaseInit.Do(func() {
		c.directorUseCase, err = c.initDirectorUseCase()
		if err != nil {
			c.initErrors["directorUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["directorUseCase"]; exists {
		return nil, storedErr
	}
	return c.directorUseCase, nil
}

// DirectorHandler returns the director HTTP handler.
func (c *Container) DirectorHandler() (*directorHTTP.DirectorHandler, error) {
	var err error
	c.directorHandlerInit.Do(func() {
		c.directorHandler, err = c.initDirectorHandler()
		if err != nil {
			c.initErrors["directorHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["directorHandler"]; exists {
		return nil, storedErr
	}
	return c.directorHandler, nil
}

// GenreRepository returns the genre repository based on database driver.
func (c *Container) GenreRepository() (genreUseCase.GenreRepository, error) {
	var err error
	c.genreRepositoryInit.Do(func() {
		c.genreRepository, err = c.initGenreRepository()
		if err != nil {
			c.initErrors["genreRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["genreRepository"]; exists {
		return nil, storedErr
	}
	return c.genreRepository, nil
}

// GenreUseCase returns the genre use case.
func (c *Container) GenreUseCase() (genreUseCase.UseCase, error) {
	var err error
	c.genreUseCaseInit.Do(func() {
		c.genreUseCase, err = c.initGenreUseCase()
		if err != nil {
			c.initErrors["genreUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["genreUseCase"]; exists {
		return nil, storedErr
	}
	return c.genreUseCase, nil
}

// GenreHandler returns the genre HTTP handler.
func (c *Container) GenreHandler() (*genreHTTP.GenreHandler, error) {
	var err error
	c.genreHandlerInit.Do(func() {
		c.genreHandler, err = c.initGenreHandler()
		if err != nil {
			c.initErrors["genreHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["genreHandler"]; exists {
		return nil, storedErr
	}
	return c.genreHandler, nil
}

// MovieRepository returns the movie repository based on database driver.
func (c *Container) MovieRepository() (movieUseCase.MovieRepository, error) {
	var err error
	c.movieRepositoryInit.Do(func() {
		c.movieRepository, err = c.initMovieRepository()
		if err != nil {
			c.initErrors["movieRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["movieRepository"]; exists {
		return nil, storedErr
	}
	return c.movieRepository, nil
}

// MovieUseCase returns the movie use case.
func (c *Container) MovieUseCase() (movieUseCase.UseCase, error) {
	var err error
	c.movieUseCaseInit.Do(func() {
		c.movieUseCase, err = c.initMovieUseCase()
		if err != nil {
			c.initErrors["movieUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["movieUseCase"]; exists {
		return nil, storedErr
	}
	return c.movieUseCase, nil
}

// MovieHandler returns the movie HTTP handler.
func (c *Container) MovieHandler() (*movieHTTP.MovieHandler, error) {
	var err error
	c.movieHandlerInit.Do(func() {
		c.movieHandler, err = c.initMovieHandler()
		if err != nil {
			c.initErrors["movieHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["movieHandler"]; exists {
		return nil, storedErr
	}
	return c.movieHandler, nil
}

func (c *Container) initDirectorRepository() (directorUseCase.DirectorRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for director repository: %w", err)
	}

	postgres, err := c.usesPostgres()
	if err != nil {
		return nil, err
	}
	if postgres {
		return directorRepository.NewPostgreSQLDirectorRepository(db), nil
	}
	return directorRepository.NewMySQLDirectorRepository(db), nil
}

func (c *Container) initDirectorUseCase() (directorUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for director use case: %w", err)
	}

	repo, err := c.DirectorRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get director repository for director use case: %w", err)
	}

	catalogCache, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for director use case: %w", err)
	}

	baseUseCase := directorUseCase.NewDirectorUseCase(txManager, repo, catalogCache)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for director use case: %w", err)
		}
		return directorUseCase.NewDirectorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initDirectorHandler() (*directorHTTP.DirectorHandler, error) {
	useCase, err := c.DirectorUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get director use case for director handler: %w", err)
	}
	return directorHTTP.NewDirectorHandler(useCase, c.Logger()), nil
}

func (c *Container) initGenreRepository() (genreUseCase.GenreRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for genre repository: %w", err)
	}

	postgres, err := c.usesPostgres()
	if err != nil {
		return nil, err
	}
	if postgres {
		return genreRepository.NewPostgreSQLGenreRepository(db), nil
	}
	return genreRepository.NewMySQLGenreRepository(db), nil
}

func (c *Container) initGenreUseCase() (genreUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for genre use case: %w", err)
	}

	repo, err := c.GenreRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get genre repository for genre use case: %w", err)
	}

	catalogCache, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for genre use case: %w", err)
	}

	baseUseCase := genreUseCase.NewGenreUseCase(txManager, repo, catalogCache)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for genre use case: %w", err)
		}
		return genreUseCase.NewGenreUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initGenreHandler() (*genreHTTP.GenreHandler, error) {
	useCase, err := c.GenreUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get genre use case for genre handler: %w", err)
	}
	return genreHTTP.NewGenreHandler(useCase, c.Logger()), nil
}

func (c *Container) initMovieRepository() (movieUseCase.MovieRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for movie repository: %w", err)
	}

	postgres, err := c.usesPostgres()
	if err != nil {
		return nil, err
	}
	if postgres {
		return movieRepository.NewPostgreSQLMovieRepository(db), nil
	}
	return movieRepository.NewMySQLMovieRepository(db), nil
}

// initMovieUseCase creates the movie use case. Director and genre references
// are checked through their use cases so the checks hit the cache.
func (c *Container) initMovieUseCase() (movieUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for movie use case: %w", err)
	}

	repo, err := c.MovieRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get movie repository for movie use case: %w", err)
	}

	directors, err := c.DirectorUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get director use case for movie use case: %w", err)
	}

	genres, err := c.GenreUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get genre use case for movie use case: %w", err)
	}

	catalogCache, err := c.Cache()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache for movie use case: %w", err)
	}

	baseUseCase := movieUseCase.NewMovieUseCase(txManager, repo, directors, genres, catalogCache)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for movie use case: %w", err)
		}
		return movieUseCase.NewMovieUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initMovieHandler() (*movieHTTP.MovieHandler, error) {
	useCase, err := c.MovieUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get movie use case for movie handler: %w", err)
	}
	return movieHTTP.NewMovieHandler(useCase, c.Logger()), nil
}
