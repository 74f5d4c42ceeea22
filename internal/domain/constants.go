package domain

// MaxProductStock es el tope de unidades en stock por producto. Lo comparten la
// validación de los DTO y el ledger: debe existir una sola definición.
const MaxProductStock int64 = 1000
