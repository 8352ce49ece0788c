package repoargs

import "github.com/fsdevblog/tg-store/internal/domain"

type ProductCreate = domain.ProductCreate

type OrderCreate = domain.OrderCreate
