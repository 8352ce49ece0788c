package repoargs

import "github.com/fsdevblog/tg-store/internal/domain"

type AccountCreate = domain.AccountCreate
