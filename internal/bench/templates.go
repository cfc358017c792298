package bench

import "fmt"

// Content templates for the corpus categories. The bodies deliberately
// include TODO and FIXME markers so content searches over the generated
// tree have predictable hit rates.

func pythonModule(i int) string {
	return fmt.Sprintf(`class Module%d:
    def __init__(self):
        self.value = %d

    def process(self):
        return self.value * 2`, i, i)
}

func pythonHelper(i int) string {
	return fmt.Sprintf(`# Helper module %d
def helper_function_%d(x):
    # TODO: Implement logic
    return x + %d

def another_helper(y):
    # FIXME: This needs optimization
    return y * %d`, i, i, i, i)
}

func pythonTest(i int) string {
	return fmt.Sprintf(`import unittest
from src.module_%d import Module%d

class TestModule%d(unittest.TestCase):
    def test_init(self):
        # TODO: Add more tests
        obj = Module%d()
        self.assertEqual(obj.value, %d)

    def test_process(self):
        obj = Module%d()
        result = obj.process()
        self.assertEqual(result, %d * 2)`, i, i, i, i, i, i, i)
}

func jsComponent(i int) string {
	return fmt.Sprintf(`export class Component%d {
    constructor() {
        this.state = { value: %d };
    }

    render() {
        // TODO: Implement render logic
        return this.state.value;
    }
}`, i, i)
}

func jsUtil(i int) string {
	return fmt.Sprintf(`// Utility functions
export function calculateValue%d(x) {
    // FIXME: Error handling needed
    return x * %d;
}

export function processData%d(data) {
    return data.map(x => x + %d);
}`, i, i, i, i)
}

func jsonConfig(i int) string {
	return fmt.Sprintf(`{
  "name": "config_%d",
  "version": "1.0.%d",
  "settings": {
    "enabled": true,
    "value": %d
  }
}`, i, i, i)
}

func yamlConfig(i int) string {
	return fmt.Sprintf(`name: settings_%d
version: 1.0.%d
settings:
  enabled: true
  value: %d
  description: 'Configuration file %d'`, i, i, i, i)
}

func markdownDoc(i int) string {
	return fmt.Sprintf(`# Documentation %d

## Overview
This is documentation file number %d.

## TODO
- Add more examples
- Update API reference
- Fix typos

## Examples
`+"```python"+`
from module_%d import Module%d
obj = Module%d()
result = obj.process()
`+"```"+`

## Notes
FIXME: This section needs review.`, i, i, i, i, i)
}

func shellScript(i int) string {
	return fmt.Sprintf(`#!/bin/bash
# Script %d
# TODO: Add error handling

function main() {
    echo "Running script %d"
    # FIXME: Add validation
    local value=%d
    echo "Value: $value"
}

main "$@"`, i, i, i)
}

func pythonLibrary(i int) string {
	return fmt.Sprintf(`"""Library module %d"""

class Library%d:
    """TODO: Add class documentation"""

    def __init__(self):
        self.name = 'library_%d'

    def execute(self):
        # FIXME: Implement logic
        pass`, i, i, i)
}

func jsLibrary(i int) string {
	return fmt.Sprintf(`/**
 * Common utilities %d
 * TODO: Add JSDoc comments
 */

export const CONSTANT_%d = %d;

export function commonFunction%d() {
    // FIXME: Add implementation
    return CONSTANT_%d;
}`, i, i, i, i, i)
}

func pythonExample(i int) string {
	return fmt.Sprintf(`#!/usr/bin/env python3
"""Example %d"""

# TODO: Add more examples

def example_%d():
    """
    Example function %d
    FIXME: Add proper error handling
    """
    value = %d
    result = value * 2
    print(f"Result: {result}")
    return result

if __name__ == '__main__':
    example_%d()`, i, i, i, i, i)
}

func textData(i int) string {
	return fmt.Sprintf(`Data file %d
This is a text file with some content.
TODO: Process this data
Line %d
FIXME: Review content`, i, i)
}

func envFile(i int) string {
	return fmt.Sprintf(`# Environment %d
VAR_%d=value_%d
DEBUG=true
# TODO: Add more variables`, i, i, i)
}

func readmeFile(i int) string {
	return fmt.Sprintf(`# README %d

Project documentation %d.

## TODO
- Complete documentation
- Add examples`, i, i)
}

func pythonLegacy(i int) string {
	return fmt.Sprintf(`# Legacy code %d
# DEPRECATED: This module is deprecated
# TODO: Remove in next version

def old_function_%d():
    return %d`, i, i, i)
}

func pythonIntegrationTest(i int) string {
	return fmt.Sprintf(`# Integration test %d
# TODO: Add more test cases

def test_integration_%d():
    assert True  # FIXME: Real test needed`, i, i)
}
